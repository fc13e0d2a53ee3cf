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

// approvalService implements the ApprovalUsecase interface.
type approvalService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Approve moves the account to the approved state. Approving an already
// approved account is a no-op.
func (srv *approvalService) Approve(ctx context.Context, accountID uuid.UUID) error {
	return srv.decide(ctx, accountID, entity.ApprovalApproved)
}

// Reject moves the account to the rejected state. Rejecting an already
// rejected account is a no-op.
func (srv *approvalService) Reject(ctx context.Context, accountID uuid.UUID) error {
	return srv.decide(ctx, accountID, entity.ApprovalRejected)
}

// decide applies one approval decision. The state change itself is a single
// conditional UPDATE in the repository, so concurrent decisions never
// interleave a read-modify-write.
func (srv *approvalService) decide(ctx context.Context, accountID uuid.UUID, state entity.ApprovalState) error {
	srv.log(ctx).Info("Applying approval decision", slog.Any("accountID", accountID), slog.String("state", state.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account to review does not exist")
			}

			return errors.Wrap(err, "failed to load account for approval decision")
		}

		// The admin account bypasses the approval field entirely.
		if account.IsAdmin() {
			return domainerrors.ErrAdminProtected.WrapMessage("refusing to review the admin account")
		}

		if account.ApprovalState == state {
			return nil
		}

		if err := accountRepo.UpdateApprovalState(ctx, accountID, state); err != nil {
			return errors.Wrap(err, "failed to update approval state")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Approval decision failed", slog.Any("accountID", accountID), slog.String("state", state.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute approval decision transaction")
	}

	return nil
}

// ListPending returns accounts awaiting review, newest-first.
func (srv *approvalService) ListPending(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListByApprovalState(ctx, entity.ApprovalPending)
	if err != nil {
		srv.log(ctx).Error("Failed to list pending accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list pending accounts")
	}

	return accounts, nil
}
