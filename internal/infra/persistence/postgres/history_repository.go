// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/domain/repository"
	"snaptext/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// historyRepository implements the domain.HistoryRepository interface.
// Every statement is scoped by account_id, keeping records owned by exactly
// one account and making each mutation atomic at the row level.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// Add persists a new history record under its owning account.
func (repo *historyRepository) Add(ctx context.Context, record *entity.HistoryRecord) error {
	recordM := fromHistoryRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create history record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListByAccount returns the account's records, newest-first.
func (repo *historyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.HistoryRecord, error) {
	var recordModels []*model.HistoryRecordModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&recordModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list history records")
	}

	records := make([]*entity.HistoryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toHistoryRecordDomain(recordM))
	}

	return records, nil
}

// Delete removes one record owned by the account. The account scope in the
// WHERE clause prevents deleting another account's record by guessed ID.
func (repo *historyRepository) Delete(ctx context.Context, accountID, recordID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", recordID, accountID).
		Delete(&model.HistoryRecordModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete history record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHistoryRecordNotFound
	}

	return nil
}

// DeleteOlderThan removes the account's records created before the cutoff
// in one statement. A zero rows-affected result is the sweep's no-op case;
// no write happens for accounts with nothing expired.
func (repo *historyRepository) DeleteOlderThan(ctx context.Context, accountID uuid.UUID, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND created_at < ?", accountID, cutoff).
		Delete(&model.HistoryRecordModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired history records")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toHistoryRecordDomain converts a GORM HistoryRecordModel to a domain HistoryRecord entity.
func toHistoryRecordDomain(data *model.HistoryRecordModel) *entity.HistoryRecord {
	if data == nil {
		return nil
	}

	return &entity.HistoryRecord{
		ID:         data.ID,
		AccountID:  data.AccountID,
		PayloadRef: data.PayloadRef,
		ResultText: data.ResultText,
		CreatedAt:  data.CreatedAt,
	}
}

// fromHistoryRecordDomain converts a domain HistoryRecord entity to a GORM HistoryRecordModel.
func fromHistoryRecordDomain(data *entity.HistoryRecord) *model.HistoryRecordModel {
	if data == nil {
		return nil
	}

	return &model.HistoryRecordModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		PayloadRef: data.PayloadRef,
		ResultText: data.ResultText,
		CreatedAt:  data.CreatedAt,
	}
}
