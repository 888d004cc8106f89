package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arogya-ai/internal/service"
)

// UserHandler mantiene dependencias para la sesión de perfil.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
	}
}

// StartSession maneja POST /session.
func (h *UserHandler) StartSession(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.userServ.StartSession(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid name or email"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		default:
			h.logger.Error("start session failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Me maneja GET /me.
func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	user, err := h.userServ.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("load profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SignOut maneja DELETE /me.
func (h *UserHandler) SignOut(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.userServ.SignOut(c.Request.Context(), claims); err != nil {
		h.logger.Error("sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign out"})
		return
	}
	c.Status(http.StatusNoContent)
}
