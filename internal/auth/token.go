package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mateusvb/auth-api/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims represents the claims carried by an identity token. The user
// ID is the only claim this application consumes.
type TokenClaims struct {
	UserID    string    `json:"id"` // UUID stored as string in token
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"` // zero when the token has no expiry
}

// TokenService defines the interface for token creation and validation.
// Implementations include JWTService (HS256) and PasetoService (v4.local).
// Validation is a pure function of the token and the signing secret; no
// server-side session state exists.
type TokenService interface {
	CreateToken(userID uuid.UUID) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// NewTokenService builds the token backend selected by configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	switch cfg.TokenBackend {
	case config.TokenBackendJWT:
		return NewJWTService(cfg.Secret, cfg.TokenTTL)
	case config.TokenBackendPaseto:
		return NewPasetoService(cfg.Secret, cfg.TokenTTL)
	default:
		return nil, fmt.Errorf("unknown token backend %q", cfg.TokenBackend)
	}
}
