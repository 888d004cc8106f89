package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/service"
)

// WellnessHandler expone los datos por usuario: diario, historial, favoritos y tema.
type WellnessHandler struct {
	logger   *zap.Logger
	wellness *service.WellnessService
	mood     *service.MoodAnalyzer
}

func NewWellnessHandler(logger *zap.Logger, wellness *service.WellnessService, mood *service.MoodAnalyzer) *WellnessHandler {
	return &WellnessHandler{
		logger:   logger,
		wellness: wellness,
		mood:     mood,
	}
}

// ListJournal maneja GET /journal.
func (h *WellnessHandler) ListJournal(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	entries, err := h.wellness.ListJournal(c.Request.Context(), claims.UserID)
	if err != nil {
		h.internalError(c, "list journal failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// AddJournalEntry maneja POST /journal.
func (h *WellnessHandler) AddJournalEntry(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req struct {
		Prompt   string `json:"prompt"`
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid journal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	entry, err := h.wellness.AddJournalEntry(c.Request.Context(), claims.UserID, req.Prompt, req.Response)
	if err != nil {
		if errors.Is(err, service.ErrEmptyJournalEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "journal response is empty"})
			return
		}
		h.internalError(c, "add journal entry failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// DeleteJournalEntry maneja DELETE /journal/:id.
func (h *WellnessHandler) DeleteJournalEntry(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	if err := h.wellness.DeleteJournalEntry(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrJournalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "journal entry not found"})
			return
		}
		h.internalError(c, "delete journal entry failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// JournalPrompt maneja GET /journal/prompt?text=. Sin texto usa la categoría neutral.
func (h *WellnessHandler) JournalPrompt(c *gin.Context) {
	category, prompt := h.wellness.JournalPrompt(h.moodFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"category": category, "prompt": prompt})
}

// MoodHistory maneja GET /mood/history.
func (h *WellnessHandler) MoodHistory(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	history, err := h.wellness.MoodHistory(c.Request.Context(), claims.UserID)
	if err != nil {
		h.internalError(c, "load mood history failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": history})
}

// Favorites maneja GET /favorites.
func (h *WellnessHandler) Favorites(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	favs, err := h.wellness.Favorites(c.Request.Context(), claims.UserID)
	if err != nil {
		h.internalError(c, "load favorites failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// AddFavorite maneja POST /favorites.
func (h *WellnessHandler) AddFavorite(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req domain.FavoriteAffirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid favorite request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	favs, err := h.wellness.AddFavorite(c.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyAffirmation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "affirmation text is empty"})
			return
		}
		h.internalError(c, "add favorite failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// RemoveFavorite maneja DELETE /favorites?text=.
func (h *WellnessHandler) RemoveFavorite(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	favs, err := h.wellness.RemoveFavorite(c.Request.Context(), claims.UserID, c.Query("text"))
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		h.internalError(c, "remove favorite failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// SuggestAffirmation maneja GET /affirmations/suggest?category=&text=.
func (h *WellnessHandler) SuggestAffirmation(c *gin.Context) {
	aff, err := h.wellness.SuggestAffirmation(h.moodFromQuery(c), c.Query("category"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		h.internalError(c, "suggest affirmation failed", err)
		return
	}
	c.JSON(http.StatusOK, aff)
}

// Theme maneja GET /theme.
func (h *WellnessHandler) Theme(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	theme, err := h.wellness.Theme(c.Request.Context(), claims.UserID)
	if err != nil {
		h.internalError(c, "load theme failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme maneja PUT /theme.
func (h *WellnessHandler) SetTheme(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid theme request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	theme := domain.Theme(strings.ToLower(strings.TrimSpace(req.Theme)))
	if err := h.wellness.SetTheme(c.Request.Context(), claims.UserID, theme); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be dark or light"})
			return
		}
		h.internalError(c, "save theme failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *WellnessHandler) claims(c *gin.Context) (service.Claims, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return service.Claims{}, false
	}
	return claims, true
}

// moodFromQuery analiza el parámetro text; nil si no viene.
func (h *WellnessHandler) moodFromQuery(c *gin.Context) *domain.MoodAnalysis {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		return nil
	}
	analysis := h.mood.Analyze(text)
	return &analysis
}

func (h *WellnessHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
