package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"arogya-ai/internal/domain"
)

// JWTService emite y valida los tokens de sesión.
// El token solo identifica el espacio de datos del usuario.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
	sessions  SessionStore
}

type AccessToken struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type Claims struct {
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
	ErrJWTRevoked = errors.New("jwt revoked")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "arogya-ai",
		sessions:  NewMemorySessionStore(),
	}
}

func NewJWTServiceWithStore(secret string, accessTTL time.Duration, store SessionStore) *JWTService {
	svc := NewJWTService(secret, accessTTL)
	if store != nil {
		svc.sessions = store
	}
	return svc
}

// Issue firma un token de acceso y registra su jti como sesión activa.
func (s *JWTService) Issue(user domain.User) (AccessToken, error) {
	if len(s.secret) == 0 {
		return AccessToken{}, ErrJWTInvalid
	}
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return AccessToken{}, err
	}
	if err := s.sessions.Store(jti, user.ID, s.accessTTL); err != nil {
		return AccessToken{}, err
	}
	return AccessToken{
		Token:     signed,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}

// ParseAccessToken valida firma, expiración, emisor y que la sesión siga activa.
func (s *JWTService) ParseAccessToken(accessToken string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(accessToken) == "" {
		return Claims{}, ErrJWTInvalid
	}
	claims, err := s.parseToken(accessToken)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != "access" || !s.isValidClaims(claims) {
		return Claims{}, ErrJWTInvalid
	}
	ok, err := s.sessions.Exists(claims.ID)
	if err != nil {
		return Claims{}, err
	}
	if !ok {
		return Claims{}, ErrJWTRevoked
	}
	return claims, nil
}

// Revoke cierra la sesión asociada al token.
func (s *JWTService) Revoke(claims Claims) error {
	if strings.TrimSpace(claims.ID) == "" {
		return ErrJWTInvalid
	}
	return s.sessions.Revoke(claims.ID)
}

// RevokeAll cierra todas las sesiones abiertas del usuario del token.
func (s *JWTService) RevokeAll(claims Claims) error {
	if strings.TrimSpace(claims.UserID) == "" {
		return ErrJWTInvalid
	}
	return s.sessions.RevokeUser(claims.UserID)
}

func (s *JWTService) parseToken(tokenString string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	if strings.TrimSpace(claims.ID) == "" {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
