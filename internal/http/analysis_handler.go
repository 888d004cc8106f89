package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/service"
)

// AnalysisHandler expone los motores de reglas: ánimo, síntomas, dieta y compañero.
type AnalysisHandler struct {
	logger    *zap.Logger
	mood      *service.MoodAnalyzer
	symptoms  *service.SymptomService
	diet      *service.DietService
	companion *service.CompanionService
	wellness  *service.WellnessService
	health    llm.HealthChecker
}

// NewAnalysisHandler crea una instancia de AnalysisHandler con dependencias necesarias.
func NewAnalysisHandler(
	logger *zap.Logger,
	mood *service.MoodAnalyzer,
	symptoms *service.SymptomService,
	diet *service.DietService,
	companion *service.CompanionService,
	wellness *service.WellnessService,
	health llm.HealthChecker,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:    logger,
		mood:      mood,
		symptoms:  symptoms,
		diet:      diet,
		companion: companion,
		wellness:  wellness,
		health:    health,
	}
}

// AnalyzeMood maneja POST /mood/analyze. Con sesión activa guarda el resultado en el historial.
func (h *AnalysisHandler) AnalyzeMood(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	analysis := h.mood.Analyze(req.Text)
	if claims, ok := GetAuthClaims(c); ok && strings.TrimSpace(req.Text) != "" {
		if _, err := h.wellness.RecordMood(c.Request.Context(), claims.UserID, analysis); err != nil {
			h.logger.Error("record mood failed", zap.String("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record mood"})
			return
		}
	}
	c.JSON(http.StatusOK, analysis)
}

// AnalyzeSymptoms maneja POST /symptoms/analyze.
func (h *AnalysisHandler) AnalyzeSymptoms(c *gin.Context) {
	var req struct {
		Symptoms string `json:"symptoms" binding:"required"`
		Age      *int   `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid symptoms request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" || (req.Age != nil && *req.Age < 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.symptoms.Analyze(c.Request.Context(), req.Symptoms, service.SymptomOptions{Age: req.Age})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
			return
		}
		h.logger.Error("symptom analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze symptoms"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DietPlan maneja POST /diet/plan.
func (h *AnalysisHandler) DietPlan(c *gin.Context) {
	var req struct {
		Query   string           `json:"query" binding:"required"`
		History []domain.Message `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid diet request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, h.diet.Generate(req.Query, req.History))
}

// CompanionMessage maneja POST /companion/message.
func (h *AnalysisHandler) CompanionMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid companion request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	analysis, reply := h.companion.Reply(req.Content)
	c.JSON(http.StatusOK, gin.H{"analysis": analysis, "reply": reply})
}

// Health maneja GET /health.
func (h *AnalysisHandler) Health(c *gin.Context) {
	status, err := h.health.CheckHealth(c.Request.Context())
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusOK, llm.Health{Available: false})
		return
	}
	c.JSON(http.StatusOK, status)
}
