package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
)

// MaxPrescriptionImageBytes es el tamaño máximo aceptado de la imagen (5 MB).
const MaxPrescriptionImageBytes = 5 << 20

const PrescriptionFallbackModel = "Fallback Analysis"

var (
	ErrInvalidFileType = errors.New("please upload an image file (JPEG, PNG, etc.)")
	ErrFileTooLarge    = errors.New("please upload an image smaller than 5MB")
	ErrEmptyFile       = errors.New("uploaded file is empty")
)

// PrescriptionUpload describe el archivo recibido. El contenido no se lee:
// la lectura de la receta es simulada.
type PrescriptionUpload struct {
	Name        string
	ContentType string
	Size        int64
}

// Validate aplica las reglas del formulario de carga: tipo image/* y hasta 5 MB.
func (u PrescriptionUpload) Validate() error {
	if !strings.Contains(strings.ToLower(u.ContentType), "image/") {
		return ErrInvalidFileType
	}
	if u.Size <= 0 {
		return ErrEmptyFile
	}
	if u.Size > MaxPrescriptionImageBytes {
		return ErrFileTooLarge
	}
	return nil
}

var prescriptionMedications = []domain.Medication{
	{Name: "Atorvastatin", Dosage: "20mg", Frequency: "once daily at bedtime", Duration: "ongoing"},
	{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3 times daily with meals", Duration: "10 days"},
	{Name: "Metformin", Dosage: "850mg", Frequency: "twice daily with meals", Duration: "ongoing"},
	{Name: "Lisinopril", Dosage: "10mg", Frequency: "once daily in the morning", Duration: "ongoing"},
	{Name: "Levothyroxine", Dosage: "75mcg", Frequency: "once daily on empty stomach", Duration: "ongoing"},
	{Name: "Ibuprofen", Dosage: "400mg", Frequency: "as needed for pain, up to 3 times daily", Duration: "5 days"},
	{Name: "Cetirizine", Dosage: "10mg", Frequency: "once daily", Duration: "allergy season"},
}

var prescriptionDiagnoses = []string{
	"Hypertension",
	"Type 2 Diabetes",
	"Hypothyroidism",
	"Hypercholesterolemia",
	"Upper Respiratory Tract Infection",
	"Seasonal Allergic Rhinitis",
	"Osteoarthritis",
	"Gastroesophageal Reflux Disease",
	"Anxiety Disorder",
	"Mild Depression",
	"Insomnia",
	"Vitamin D Deficiency",
}

var prescriptionFollowUps = []string{
	"Schedule follow-up in 2 weeks.",
	"Return if symptoms persist beyond 7 days.",
	"Monthly check-ups recommended.",
	"Lab work requested prior to next visit.",
	"Follow up in 3 months to assess medication effectiveness.",
}

var medicationWarnings = map[string]domain.PrescriptionWarning{
	"Amoxicillin": {
		Type: "Allergy Risk", Severity: domain.UrgencyMedium,
		Message: "Check for penicillin allergy before taking Amoxicillin",
	},
	"Atorvastatin": {
		Type: "Dietary Restriction", Severity: domain.UrgencyMedium,
		Message: "Avoid grapefruit and grapefruit juice while taking Atorvastatin",
	},
	"Metformin": {
		Type: "Side Effect", Severity: domain.UrgencyLow,
		Message: "May cause GI upset; take with food to minimize symptoms",
	},
	"Lisinopril": {
		Type: "Monitoring Needed", Severity: domain.UrgencyMedium,
		Message: "Monitor blood pressure and kidney function regularly",
	},
}

var diagnosisRecommendations = map[string][]string{
	"Hypertension": {
		"Maintain a low-sodium diet",
		"Regular blood pressure monitoring is recommended",
	},
	"Type 2 Diabetes": {
		"Monitor blood glucose levels regularly",
		"Maintain consistent meal timing and portions",
	},
	"Seasonal Allergic Rhinitis": {
		"Use air purifiers at home during high pollen seasons",
		"Consider tracking pollen counts in your area",
	},
}

type PrescriptionService struct {
	checker llm.HealthChecker
	rnd     random.Source
	now     func() time.Time
	logger  *zap.Logger
}

func NewPrescriptionService(checker llm.HealthChecker, rnd random.Source, logger *zap.Logger) *PrescriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrescriptionService{
		checker: checker,
		rnd:     rnd,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// Analyze valida el archivo y devuelve la lectura simulada de la receta.
// Si el modelo no responde se devuelve la receta de respaldo.
func (s *PrescriptionService) Analyze(ctx context.Context, upload PrescriptionUpload) (domain.PrescriptionAnalysis, error) {
	if err := upload.Validate(); err != nil {
		return domain.PrescriptionAnalysis{}, err
	}
	health, err := s.checker.CheckHealth(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.PrescriptionAnalysis{}, ctxErr
		}
		s.logger.Warn("model health check failed, using fallback prescription", zap.Error(err))
		return s.fallback(), nil
	}
	if !health.Available {
		s.logger.Info("model unavailable, using fallback prescription")
		return s.fallback(), nil
	}
	s.logger.Info("prescription analyzed",
		zap.String("file", upload.Name),
		zap.Int64("size", upload.Size),
	)
	return s.generate(upload.Size), nil
}

func (s *PrescriptionService) generate(size int64) domain.PrescriptionAnalysis {
	// factor en [0, 1): mezcla el azar con el tamaño del archivo.
	factor := (s.rnd.Float64() + float64(size%100)/100) / 2

	meds := make([]domain.Medication, 0, 3)
	for _, i := range s.pickDistinct(len(prescriptionMedications), int(factor*3)+1) {
		meds = append(meds, prescriptionMedications[i])
	}
	diagnoses := make([]string, 0, 2)
	for _, i := range s.pickDistinct(len(prescriptionDiagnoses), int(factor*2)+1) {
		diagnoses = append(diagnoses, prescriptionDiagnoses[i])
	}

	lowered := make([]string, len(diagnoses))
	for i, d := range diagnoses {
		lowered[i] = strings.ToLower(d)
	}
	notes := "Patient presents with " + strings.Join(lowered, " and ") + ". " +
		prescriptionFollowUps[int(factor*float64(len(prescriptionFollowUps)))]

	warnings := []domain.PrescriptionWarning{}
	for _, m := range meds {
		if w, ok := medicationWarnings[m.Name]; ok {
			warnings = append(warnings, w)
		}
	}

	gender, model := "Female", "Gemini Pro"
	if factor > 0.5 {
		gender, model = "Male", "ChatGPT-4"
	}
	recs := []string{
		"Take all medications as prescribed",
		"Report any adverse effects to your healthcare provider immediately",
		"Schedule follow-up appointments as recommended",
	}
	for _, d := range diagnoses {
		recs = append(recs, diagnosisRecommendations[d]...)
	}

	return domain.PrescriptionAnalysis{
		Medications:  meds,
		Diagnoses:    diagnoses,
		DoctorNotes:  notes,
		PatientInfo:  domain.PrescriptionPatient{Name: "Patient", Age: int(factor*50) + 20, Gender: gender},
		WarningFlags: warnings,
		Interactions: medicationInteractions(meds),
		Timestamp:    s.now(),
		AIAnalysis: domain.PrescriptionAI{
			ModelUsed:       model,
			ConfidenceScore: math.Round((0.75+factor*0.2)*100) / 100,
			Recommendations: recs,
		},
	}
}

// pickDistinct elige k índices distintos de [0, n) con Fisher-Yates parcial.
func (s *PrescriptionService) pickDistinct(n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// medicationInteractions revisa cada par de medicamentos una vez.
func medicationInteractions(meds []domain.Medication) []domain.Interaction {
	out := []domain.Interaction{}
	for i := 0; i < len(meds); i++ {
		for j := i + 1; j < len(meds); j++ {
			a, b := meds[i].Name, meds[j].Name
			in := domain.Interaction{
				Medications: []string{a, b},
				Severity:    domain.UrgencyLow,
				Description: "No significant interactions expected between these medications",
			}
			switch {
			case isPair(a, b, "Lisinopril", "Metformin"):
				in.Description = "Monitor blood glucose levels as combination may enhance glucose-lowering effect"
			case isPair(a, b, "Ibuprofen", "Lisinopril"):
				in.Severity = domain.UrgencyMedium
				in.Description = "NSAIDs may reduce effectiveness of blood pressure medications"
			}
			out = append(out, in)
		}
	}
	return out
}

func isPair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func (s *PrescriptionService) fallback() domain.PrescriptionAnalysis {
	return domain.PrescriptionAnalysis{
		Medications: []domain.Medication{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3 times daily", Duration: "7 days"},
			{Name: "Paracetamol", Dosage: "650mg", Frequency: "As needed for pain", Duration: "3 days"},
		},
		Diagnoses:   []string{"Upper respiratory tract infection", "Mild fever"},
		DoctorNotes: "Rest advised. Plenty of fluids. Follow up if symptoms persist beyond 5 days.",
		PatientInfo: domain.PrescriptionPatient{Name: "Patient", Age: 35, Gender: "Unknown"},
		WarningFlags: []domain.PrescriptionWarning{
			medicationWarnings["Amoxicillin"],
		},
		Interactions: []domain.Interaction{{
			Medications: []string{"Amoxicillin", "Paracetamol"},
			Severity:    domain.UrgencyLow,
			Description: "No significant interactions expected between these medications",
		}},
		Timestamp: s.now(),
		AIAnalysis: domain.PrescriptionAI{
			ModelUsed:       PrescriptionFallbackModel,
			ConfidenceScore: 0.7,
			Recommendations: []string{
				"Take all medications as prescribed",
				"Rest and hydrate adequately",
				"Follow up if symptoms worsen",
			},
		},
	}
}
