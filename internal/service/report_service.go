package service

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
)

//go:embed data/reports.yaml
var defaultReportsYAML []byte

const (
	ReportModel         = "GPT-4/Gemini AI Health Analysis"
	ReportFallbackModel = "Basic Analysis (AI Service Unavailable)"

	maxReportConditions = 3
	maxReportAge        = 130
)

var ErrInvalidReport = errors.New("invalid report data")

// ReportCatalog es el contenido estático del analizador de informes.
type ReportCatalog struct {
	Knowledge         []domain.KnowledgeEntry   `yaml:"knowledge"`
	FallbackKnowledge []domain.KnowledgeEntry   `yaml:"fallback_knowledge"`
	Diseases          []domain.DiseaseInfo      `yaml:"diseases"`
	Articles          []domain.KnowledgeArticle `yaml:"articles"`
}

func DefaultReportCatalog() (*ReportCatalog, error) {
	return LoadReportCatalog(bytes.NewReader(defaultReportsYAML))
}

func LoadReportCatalog(r io.Reader) (*ReportCatalog, error) {
	var cat ReportCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode report catalog: %w", err)
	}
	if len(cat.FallbackKnowledge) == 0 || len(cat.Diseases) == 0 {
		return nil, errors.New("report catalog is incomplete")
	}
	return &cat, nil
}

type ReportService struct {
	checker llm.HealthChecker
	catalog *ReportCatalog
	rnd     random.Source
	now     func() time.Time
	logger  *zap.Logger
}

func NewReportService(checker llm.HealthChecker, catalog *ReportCatalog, rnd random.Source, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		checker: checker,
		catalog: catalog,
		rnd:     rnd,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// Analyze estima condiciones probables a partir de los datos del informe.
// Con el modelo caído responde el análisis básico; solo falla por datos
// inválidos o contexto cancelado.
func (s *ReportService) Analyze(ctx context.Context, in domain.ReportInput) (domain.ReportAnalysis, error) {
	if err := validateReport(in); err != nil {
		return domain.ReportAnalysis{}, err
	}
	health, err := s.checker.CheckHealth(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ReportAnalysis{}, ctxErr
		}
		s.logger.Warn("model health check failed, using basic report analysis", zap.Error(err))
		return s.basicAnalysis(in), nil
	}
	if !health.Available {
		s.logger.Info("model unavailable, using basic report analysis")
		return s.basicAnalysis(in), nil
	}
	return s.assistedAnalysis(in), nil
}

func validateReport(in domain.ReportInput) error {
	if in.Age < 0 || in.Age > maxReportAge {
		return fmt.Errorf("%w: age out of range", ErrInvalidReport)
	}
	if in.Gender != domain.GenderFemale && in.Gender != domain.GenderMale {
		return fmt.Errorf("%w: gender must be 0 or 1", ErrInvalidReport)
	}
	if in.BloodType != nil && (*in.BloodType < 0 || *in.BloodType >= len(domain.BloodTypes)) {
		return fmt.Errorf("%w: blood type must be 0-7", ErrInvalidReport)
	}
	if in.TestResult != nil && *in.TestResult != 0 && *in.TestResult != 1 {
		return fmt.Errorf("%w: test result must be 0 or 1", ErrInvalidReport)
	}
	if in.BillingAmount != nil && *in.BillingAmount < 0 {
		return fmt.Errorf("%w: negative billing amount", ErrInvalidReport)
	}
	return nil
}

func (s *ReportService) assistedAnalysis(in domain.ReportInput) domain.ReportAnalysis {
	ageFactor := "Age " + strconv.Itoa(in.Age)
	male := in.Gender == domain.GenderMale
	positive := in.TestResult != nil && *in.TestResult == 1

	var conds []domain.PotentialCondition
	add := func(name string, base, span int, factors ...string) {
		conds = append(conds, domain.PotentialCondition{
			Name:        name,
			Probability: base + s.rnd.IntN(span),
			RiskFactors: factors,
		})
	}

	switch {
	case in.Age > 60:
		genderFactor := "Female gender"
		if male {
			genderFactor = "Male gender"
		}
		add("Hypertension", 65, 15, ageFactor, genderFactor, "Genetic factors")
		add("Osteoarthritis", 55, 20, ageFactor, "Joint wear and tear", "Previous injuries")
		if male {
			add("Prostate Issues", 50, 25, ageFactor, "Male gender", "Family history")
		}
	case in.Age > 40:
		add("Type 2 Diabetes", 45, 25, ageFactor, "Dietary factors", "Sedentary lifestyle")
		if male {
			add("Coronary Artery Disease", 30, 20, ageFactor, "Male gender", "Lifestyle factors")
		} else {
			add("Breast Cancer Risk", 20, 15, ageFactor, "Female gender", "Family history")
		}
	case in.Age > 20:
		add("Anxiety Disorders", 25, 20, "Young adult stress", "Environmental factors", "Genetic predisposition")
		add("Vitamin D Deficiency", 40, 25, "Indoor lifestyle", "Dietary factors", "Geographical location")
	default:
		add("Seasonal Allergies", 35, 20, "Environmental triggers", "Genetic factors", "Immune response")
	}

	if in.BloodType != nil {
		bloodFactor := "Blood type " + domain.BloodTypes[*in.BloodType]
		switch *in.BloodType {
		case 0, 1:
			add("Gastric Cancer Risk", 15, 10, bloodFactor, "Dietary habits", "H. pylori infection")
		case 4, 5:
			add("Cardiovascular Disease Risk", 20, 15, bloodFactor, "Cholesterol levels", "Blood pressure")
		}
	}
	if positive {
		add("Inflammatory Response", 70, 20, "Positive test result", "Immune system activity", "Potential infection")
	}

	sort.SliceStable(conds, func(i, j int) bool {
		return conds[i].Probability > conds[j].Probability
	})
	if len(conds) > maxReportConditions {
		conds = conds[:maxReportConditions]
	}

	knowledge := make([]domain.KnowledgeEntry, 0, len(conds))
	followUps := []string{
		"Schedule a comprehensive health examination with your primary care physician",
		"Maintain a balanced diet rich in fruits, vegetables, and whole grains",
		"Consider regular screening tests appropriate for your age (" + strconv.Itoa(in.Age) + ") and gender",
	}
	score := 100 - math.Min(30, float64(in.Age)*0.4)
	warnings := []domain.ReportWarning{}
	if in.Age > 65 {
		warnings = append(warnings, domain.ReportWarning{
			Condition: "Advanced Age",
			Priority:  domain.UrgencyMedium,
			Message:   "Regular health monitoring recommended for adults over 65",
		})
	}

	for _, c := range conds {
		knowledge = append(knowledge, s.knowledgeFor(c))
		followUps = append(followUps, conditionFollowUps[c.Name]...)
		score -= float64(c.Probability) * 0.1
		switch {
		case c.Probability > 70:
			warnings = append(warnings, domain.ReportWarning{
				Condition: c.Name,
				Priority:  domain.UrgencyHigh,
				Message:   "High likelihood of " + c.Name + " detected, consult healthcare provider",
			})
		case c.Probability > 50:
			warnings = append(warnings, domain.ReportWarning{
				Condition: c.Name,
				Priority:  domain.UrgencyMedium,
				Message:   "Moderate risk of " + c.Name + " detected, monitor symptoms",
			})
		}
	}
	if positive {
		score -= 10
	}
	if in.BloodType != nil && (*in.BloodType == 0 || *in.BloodType == 1) {
		warnings = append(warnings, domain.ReportWarning{
			Condition: "Blood Type Risk Factor",
			Priority:  domain.UrgencyLow,
			Message:   "Type A blood groups may have higher susceptibility to certain conditions",
		})
	}

	return domain.ReportAnalysis{
		PotentialConditions:     conds,
		MedicalKnowledge:        knowledge,
		FollowUpRecommendations: followUps,
		HealthScore:             math.Max(10, math.Min(95, math.Round(score))),
		WarningFlags:            warnings,
		Timestamp:               s.now(),
		AIPowered:               true,
		ModelUsed:               ReportModel,
	}
}

var conditionFollowUps = map[string][]string{
	"Hypertension": {
		"Monitor your blood pressure regularly at home",
		"Consider reducing sodium intake in your diet",
	},
	"Type 2 Diabetes": {
		"Schedule blood glucose testing",
		"Consult with a nutritionist about a diabetes-friendly diet",
	},
	"Osteoarthritis": {
		"Consider low-impact exercises like swimming or cycling",
		"Explore pain management options with your healthcare provider",
	},
}

// knowledgeFor devuelve la ficha del catálogo o una genérica armada con los factores de riesgo.
func (s *ReportService) knowledgeFor(c domain.PotentialCondition) domain.KnowledgeEntry {
	for _, k := range s.catalog.Knowledge {
		if k.Name == c.Name {
			return k
		}
	}
	return domain.KnowledgeEntry{
		ID:            strings.ToLower(strings.Join(strings.Fields(c.Name), "-")) + "-ai",
		Name:          c.Name,
		Description:   c.Name + " is a health condition that requires proper medical attention and management.",
		RiskFactors:   append([]string(nil), c.RiskFactors...),
		Complications: []string{"Various complications can develop if left untreated"},
		Treatments:    []string{"Consult with healthcare provider for proper treatment options"},
		Prevention:    []string{"Regular health check-ups", "Healthy lifestyle", "Awareness of symptoms"},
	}
}

func (s *ReportService) basicAnalysis(in domain.ReportInput) domain.ReportAnalysis {
	ageFactor := "Age " + strconv.Itoa(in.Age)
	genderFactor := "Female"
	penalty := 0.0
	if in.Gender == domain.GenderMale {
		genderFactor = "Male"
		penalty = 5
	}

	first := domain.PotentialCondition{Name: "Common Cold", Probability: 45, RiskFactors: []string{ageFactor, genderFactor}}
	if in.Age > 50 {
		first.Name, first.Probability = "Hypertension", 65
	}
	second := domain.PotentialCondition{Name: "Seasonal Allergies", Probability: 35, RiskFactors: []string{ageFactor, "Sedentary Lifestyle"}}
	if in.Age > 40 {
		second.Name, second.Probability = "Type 2 Diabetes", 55
	}

	warnings := []domain.ReportWarning{}
	if in.Age > 60 {
		warnings = append(warnings, domain.ReportWarning{
			Condition: "Age-related risks",
			Priority:  domain.UrgencyMedium,
			Message:   "Advanced age increases risk of cardiovascular conditions",
		})
	}

	return domain.ReportAnalysis{
		PotentialConditions: []domain.PotentialCondition{first, second},
		MedicalKnowledge:    append([]domain.KnowledgeEntry(nil), s.catalog.FallbackKnowledge...),
		FollowUpRecommendations: []string{
			"Schedule a comprehensive health check-up within the next 30 days",
			"Maintain a balanced diet with reduced sodium and sugar intake",
			"Engage in at least 150 minutes of moderate exercise per week",
			"Monitor blood pressure regularly if over 45 years old",
		},
		HealthScore:  math.Max(100-float64(in.Age)*0.5-penalty, 0),
		WarningFlags: warnings,
		Timestamp:    s.now(),
		AIPowered:    false,
		ModelUsed:    ReportFallbackModel,
	}
}

// Diseases devuelve la prevalencia por grupo de edad y la correlación por grupo sanguíneo.
func (s *ReportService) Diseases() []domain.DiseaseInfo {
	return append([]domain.DiseaseInfo(nil), s.catalog.Diseases...)
}

// Knowledge filtra los artículos por título o contenido. Sin query devuelve todos.
func (s *ReportService) Knowledge(query string) []domain.KnowledgeArticle {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.KnowledgeArticle, 0, len(s.catalog.Articles))
	for _, a := range s.catalog.Articles {
		if q == "" || strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Content), q) {
			out = append(out, a)
		}
	}
	return out
}
