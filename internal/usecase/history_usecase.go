package usecase

import (
	"context"

	"snaptext/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitHistoryInput defines the data recorded for one capture result.
type SubmitHistoryInput struct {
	AccountID  uuid.UUID
	PayloadRef string
	ResultText string
}

// HistoryUsecase defines the account-scoped history operations. Every
// operation carries the owning account ID; records are never visible
// across accounts.
type HistoryUsecase interface {
	Submit(ctx context.Context, input *SubmitHistoryInput) (*entity.HistoryRecord, error)
	ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entity.HistoryRecord, error)
	DeleteOwn(ctx context.Context, accountID, recordID uuid.UUID) error
}
