package impl

import (
	"context"
	"log/slog"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/domain/repository"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	HistoryRepo repository.HistoryRepository
	Logger      *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		historyRepo: params.HistoryRepo,
		logger:      params.Logger,
	}
}

func (srv *historyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records one capture result under the submitting account.
func (srv *historyService) Submit(ctx context.Context, input *usecase.SubmitHistoryInput) (*entity.HistoryRecord, error) {
	record := &entity.HistoryRecord{
		AccountID:  input.AccountID,
		PayloadRef: input.PayloadRef,
		ResultText: input.ResultText,
	}

	// Single insert - use direct repository instance
	if err := srv.historyRepo.Add(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to add history record", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("owning account does not exist")
		}

		return nil, errors.Wrap(err, "failed to add history record")
	}

	srv.log(ctx).Debug("History record added", slog.Any("accountID", input.AccountID), slog.Any("recordID", record.ID))

	return record, nil
}

// ListOwn returns the account's history records, newest-first.
func (srv *historyService) ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entity.HistoryRecord, error) {
	records, err := srv.historyRepo.ListByAccount(ctx, accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to list history records", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list history records")
	}

	return records, nil
}

// DeleteOwn removes one record that the account owns. A record ID belonging
// to a different account is indistinguishable from a missing record.
func (srv *historyService) DeleteOwn(ctx context.Context, accountID, recordID uuid.UUID) error {
	if err := srv.historyRepo.Delete(ctx, accountID, recordID); err != nil {
		if errors.Is(err, repository.ErrHistoryRecordNotFound) {
			return domainerrors.ErrHistoryRecordNotFound.WrapMessage("record does not exist for this account")
		}

		srv.log(ctx).Error("Failed to delete history record", slog.Any("accountID", accountID), slog.Any("recordID", recordID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete history record")
	}

	srv.log(ctx).Debug("History record deleted", slog.Any("accountID", accountID), slog.Any("recordID", recordID))

	return nil
}
