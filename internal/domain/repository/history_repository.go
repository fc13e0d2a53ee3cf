package repository

import (
	"context"
	"errors"
	"time"

	"snaptext/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHistoryRecordNotFound is returned when a history record does not exist
// for the owning account.
var ErrHistoryRecordNotFound = errors.New("history record not found")

// HistoryRepository defines persistence operations for an account's owned
// history records. Every operation is scoped to a single account; records
// are never queried across accounts.
type HistoryRepository interface {
	// Add persists a new history record under its owning account.
	Add(ctx context.Context, record *entity.HistoryRecord) error

	// ListByAccount returns the account's records, newest-first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.HistoryRecord, error)

	// Delete removes one record owned by the account. Returns
	// ErrHistoryRecordNotFound when no such record exists for that account.
	Delete(ctx context.Context, accountID, recordID uuid.UUID) error

	// DeleteOlderThan removes the account's records created before the
	// cutoff in one atomic statement and reports how many were removed.
	DeleteOlderThan(ctx context.Context, accountID uuid.UUID, cutoff time.Time) (int64, error)
}
