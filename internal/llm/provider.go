package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"arogya-ai/internal/random"
)

// FallbackModel es el nombre reportado cuando responde el matcher reducido.
const FallbackModel = "Fallback Model"

// Health es el estado reportado por el servicio de modelo.
type Health struct {
	Available    bool   `json:"ai_service_available"`
	ModelVersion string `json:"model_version,omitempty"`
}

// HealthChecker es el puerto hacia el servicio de modelo (simulado en este proyecto).
type HealthChecker interface {
	CheckHealth(ctx context.Context) (Health, error)
}

// SimulatedService imita un servicio remoto: latencia artificial y caídas aleatorias.
type SimulatedService struct {
	modelVersion string
	failureRate  float64
	minLatency   time.Duration
	maxLatency   time.Duration
	rnd          random.Source
	logger       *zap.Logger
}

func NewSimulatedService(
	modelVersion string,
	failureRate float64,
	minLatency, maxLatency time.Duration,
	rnd random.Source,
	logger *zap.Logger,
) *SimulatedService {
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	if minLatency < 0 {
		minLatency = 0
	}
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedService{
		modelVersion: modelVersion,
		failureRate:  failureRate,
		minLatency:   minLatency,
		maxLatency:   maxLatency,
		rnd:          rnd,
		logger:       logger,
	}
}

// CheckHealth espera la latencia simulada y reporta disponibilidad.
// Solo devuelve error si el contexto se cancela durante la espera.
func (s *SimulatedService) CheckHealth(ctx context.Context) (Health, error) {
	if err := s.wait(ctx); err != nil {
		return Health{}, err
	}
	if s.rnd.Float64() < s.failureRate {
		s.logger.Warn("simulated model unavailable")
		return Health{Available: false}, nil
	}
	return Health{Available: true, ModelVersion: s.modelVersion}, nil
}

func (s *SimulatedService) wait(ctx context.Context) error {
	d := s.minLatency
	if span := s.maxLatency - s.minLatency; span > 0 {
		d += time.Duration(s.rnd.Float64() * float64(span))
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
