package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"arogya-ai/internal/domain"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, NewMemorySessionStore())
	user := domain.User{ID: "user_abc123xyz", Name: "Asha", Email: "asha@example.com", Role: domain.UserRolePatient}

	tok, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok.Token == "" || tok.ExpiresIn != 900 {
		t.Fatalf("unexpected token: %+v", tok)
	}

	claims, err := svc.ParseAccessToken(tok.Token)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != user.ID || claims.Subject != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_Revoke(t *testing.T) {
	svc := NewJWTService("secret", time.Minute)
	tok, err := svc.Issue(domain.User{ID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.ParseAccessToken(tok.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := svc.Revoke(claims); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := svc.ParseAccessToken(tok.Token); !errors.Is(err, ErrJWTRevoked) {
		t.Fatalf("expected ErrJWTRevoked, got %v", err)
	}
}

func TestJWTService_Rejections(t *testing.T) {
	svc := NewJWTService("secret", time.Minute)

	if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected invalid for empty token, got %v", err)
	}

	other := NewJWTService("other-secret", time.Minute)
	tok, _ := other.Issue(domain.User{ID: "u1"})
	if _, err := svc.ParseAccessToken(tok.Token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected invalid signature error, got %v", err)
	}

	noSecret := NewJWTService("", time.Minute)
	if _, err := noSecret.Issue(domain.User{ID: "u1"}); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected error without secret, got %v", err)
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("secret", time.Minute)
	past := time.Now().Add(-time.Hour)
	claims := Claims{
		UserID:    "u1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Issuer:    "arogya-ai",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.ParseAccessToken(signed); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}
