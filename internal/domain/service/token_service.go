package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a session token: who it was issued to
// and the validity window. Tokens carry nothing else; authorization is
// re-checked against the store on every protected request.
type Claims struct {
	AccountID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for minting and validating stateless
// signed session tokens. Signature verification is the sole trust
// mechanism; there is no server-side session table.
type TokenService interface {
	// Issue mints a signed token for the account with the configured validity window.
	Issue(accountID uuid.UUID) (string, error)

	// Validate verifies the signature and expiry of a token string.
	Validate(tokenString string) (*Claims, error)

	// SessionDuration returns the configured token validity window.
	SessionDuration() time.Duration
}
