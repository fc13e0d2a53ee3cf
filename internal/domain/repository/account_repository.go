// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"snaptext/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// ListAll returns every account, newest-first by creation time.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// ListByApprovalState returns accounts in the given state, newest-first.
	ListByApprovalState(ctx context.Context, state entity.ApprovalState) ([]*entity.Account, error)

	// UpdateApprovalState sets the approval state with a single atomic
	// statement, never a read-modify-write in application code.
	UpdateApprovalState(ctx context.Context, id uuid.UUID, state entity.ApprovalState) error

	// UpdatePasswordHash replaces the stored credential hash atomically.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetAdmin promotes the account to the admin role and marks it approved.
	SetAdmin(ctx context.Context, id uuid.UUID) error

	// Delete removes the account and its owned history records.
	Delete(ctx context.Context, id uuid.UUID) error
}
