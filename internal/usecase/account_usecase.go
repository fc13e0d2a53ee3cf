// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"snaptext/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its session token.
// The account starts in the pending approval state; the token lets the
// client poll its own status while waiting for approval.
type RegisterOutput struct {
	Token   string
	Account *entity.Account
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Authenticate verifies a session token and re-fetches the account it
	// names. A valid token for a deleted account is rejected.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	// EnsureAdminAccount reconciles the bootstrap admin account at startup:
	// creates it when absent, otherwise resets its password, role and
	// approval state to the configured values.
	EnsureAdminAccount(ctx context.Context) error
}
