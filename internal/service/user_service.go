package service

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/repository"
)

// UserService maneja la sesión de perfil liviana: nombre y email, sin contraseña.
type UserService struct {
	logger  *zap.Logger
	repo    repository.WellnessRepository
	tokens  *JWTService
	limiter RateLimiter
}

type Session struct {
	User      domain.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
}

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUserNotFound   = errors.New("user not found")
	ErrRateLimited    = errors.New("rate limited")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	userIDPrefix  = "user_"
	avatarBaseURL = "https://ui-avatars.com/api/"
)

// userNamespace fija el espacio UUIDv5 de los ids de usuario. No cambiarlo:
// los datos guardados quedarían huérfanos.
var userNamespace = uuid.MustParse("6f1c8f2e-3b7a-5d0c-9e4f-a2b6c8d0e1f3")

func NewUserService(logger *zap.Logger, repo repository.WellnessRepository, tokens *JWTService, limiter RateLimiter) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewMemoryRateLimiter(defaultSessionWindow, defaultSessionAttempts)
	}
	return &UserService{
		logger:  logger,
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
	}
}

// StartSession crea el perfil, lo guarda en el espacio del usuario y emite el token.
// El mismo email siempre cae en el mismo espacio de datos.
func (s *UserService) StartSession(ctx context.Context, name, email string) (Session, error) {
	if s.repo == nil || s.tokens == nil {
		return Session{}, errors.New("user service not configured")
	}
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if utf8.RuneCountInString(name) < 2 || !emailPattern.MatchString(email) {
		return Session{}, ErrInvalidProfile
	}
	if !s.limiter.Allow(email) {
		return Session{}, ErrRateLimited
	}

	user := domain.User{
		ID:             userIDFor(email),
		Name:           name,
		Email:          email,
		Role:           domain.UserRolePatient,
		ProfilePicture: avatarURL(name),
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return Session{}, err
	}
	tok, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	s.logger.Info("session started", zap.String("user_id", user.ID))
	return Session{User: user, Token: tok.Token, ExpiresIn: tok.ExpiresIn}, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.repo.LoadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// SignOut borra el perfil y revoca todas las sesiones del usuario.
// Los datos de bienestar se conservan para el próximo ingreso con el mismo email.
func (s *UserService) SignOut(ctx context.Context, claims Claims) error {
	if err := s.repo.RemoveUser(ctx, claims.UserID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.tokens.RevokeAll(claims); err != nil {
		return err
	}
	s.logger.Info("session closed", zap.String("user_id", claims.UserID))
	return nil
}

// userIDFor deriva el id del email normalizado. No depende de la semilla
// aleatoria: dos emails distintos nunca comparten espacio.
func userIDFor(email string) string {
	id := uuid.NewSHA1(userNamespace, []byte(email))
	return userIDPrefix + strings.ReplaceAll(id.String(), "-", "")
}

func avatarURL(name string) string {
	return avatarBaseURL + "?name=" + url.QueryEscape(name) + "&background=random"
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
