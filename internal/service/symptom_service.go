package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
)

const maxConditionResults = 5

// SymptomOptions son los datos opcionales del paciente.
type SymptomOptions struct {
	Age *int
}

type SymptomService struct {
	checker llm.HealthChecker
	table   *ConditionTable
	logger  *zap.Logger
}

func NewSymptomService(checker llm.HealthChecker, table *ConditionTable, logger *zap.Logger) *SymptomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SymptomService{
		checker: checker,
		table:   table,
		logger:  logger,
	}
}

// Analyze consulta el estado del modelo simulado y rankea condiciones.
// Si el modelo no está disponible responde el matcher reducido.
// Solo devuelve error cuando ctx se cancela.
func (s *SymptomService) Analyze(ctx context.Context, text string, opts SymptomOptions) (domain.SymptomReport, error) {
	health, err := s.checker.CheckHealth(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.SymptomReport{}, ctxErr
		}
		s.logger.Warn("model health check failed, using fallback", zap.Error(err))
		return s.fallbackReport(text), nil
	}
	if !health.Available {
		s.logger.Info("model unavailable, using fallback")
		return s.fallbackReport(text), nil
	}

	return domain.SymptomReport{
		Success:   true,
		ModelUsed: health.ModelVersion,
		Results:   s.Match(text, opts.Age),
	}, nil
}

// Match aplica la tabla completa al texto. Devuelve entre 1 y 5 resultados.
func (s *SymptomService) Match(text string, age *int) []domain.ConditionMatch {
	lower := strings.ToLower(text)

	matches := make([]domain.ConditionMatch, 0, 8)
	for _, c := range s.table.forAge(age) {
		count := countContained(lower, c.Keywords)
		if count == 0 {
			continue
		}
		pct := float64(count) / float64(len(c.Keywords))
		adjusted := int(math.Round(float64(c.Confidence) * (0.5 + pct*0.5)))
		matches = append(matches, toMatch(c, adjusted))
	}

	if len(matches) == 0 {
		u := s.table.Unspecified[0]
		return []domain.ConditionMatch{toMatch(u, u.Confidence)}
	}

	// estable: los empates conservan el orden de la tabla
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > maxConditionResults {
		matches = matches[:maxConditionResults]
	}
	return matches
}

// Fallback es el matcher reducido: primera regla con alguna palabra presente.
func (s *SymptomService) Fallback(text string) domain.ConditionMatch {
	lower := strings.ToLower(text)
	for _, rule := range s.table.Fallback {
		if len(rule.Keywords) == 0 || containsAny(lower, rule.Keywords) {
			return toMatch(rule, rule.Confidence)
		}
	}
	last := s.table.Fallback[len(s.table.Fallback)-1]
	return toMatch(last, last.Confidence)
}

func (s *SymptomService) fallbackReport(text string) domain.SymptomReport {
	return domain.SymptomReport{
		Success:   false,
		ModelUsed: llm.FallbackModel,
		Results:   []domain.ConditionMatch{s.Fallback(text)},
	}
}

func toMatch(c domain.Condition, confidence int) domain.ConditionMatch {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	recs := make([]string, len(c.Recommendations))
	copy(recs, c.Recommendations)
	return domain.ConditionMatch{
		Condition:       c.Name,
		Confidence:      confidence,
		Description:     c.Description,
		Recommendations: recs,
		Urgency:         c.Urgency,
	}
}
