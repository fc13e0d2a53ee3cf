// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snaptext/config"
	"snaptext/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One process-wide HMAC secret signs every session token; verification of
// that signature plus the expiry claim is the sole trust mechanism.
type jwtService struct {
	secret     string
	sessionTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := config.DefaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// Issue mints a signed HS256 token carrying the account ID and validity window.
func (s *jwtService) Issue(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate verifies the signature and expiry of a token string and returns
// the parsed claims. Any failure (malformed, expired, bad signature) yields
// an error; callers translate it to a uniform unauthenticated response.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	accountID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	claims := &service.Claims{AccountID: accountID}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}

// SessionDuration returns the configured token validity window.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
