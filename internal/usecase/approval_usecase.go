package usecase

import (
	"context"

	"snaptext/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalUsecase defines the admin-facing operations over the account
// approval lifecycle. Approve and Reject are idempotent: repeating a
// decision is a no-op, not an error.
type ApprovalUsecase interface {
	Approve(ctx context.Context, accountID uuid.UUID) error
	Reject(ctx context.Context, accountID uuid.UUID) error
	ListPending(ctx context.Context) ([]*entity.Account, error)
}
