package impl

import (
	"context"
	"log/slog"
	"time"

	"snaptext/config"
	"snaptext/internal/domain/repository"
	"snaptext/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retentionService implements the RetentionUsecase interface.
type retentionService struct {
	accountRepo repository.AccountRepository
	historyRepo repository.HistoryRepository
	window      time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// RetentionServiceParams holds dependencies for RetentionService, injected by Fx.
type RetentionServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	HistoryRepo repository.HistoryRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRetentionService is the constructor for retentionService.
func NewRetentionService(params RetentionServiceParams) usecase.RetentionUsecase {
	window := config.DefaultRetentionAge
	if params.Config != nil && params.Config.Retention != nil && params.Config.Retention.Window > 0 {
		window = params.Config.Retention.Window
	}

	return &retentionService{
		accountRepo: params.AccountRepo,
		historyRepo: params.HistoryRepo,
		window:      window,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// Sweep removes history records older than the retention window. Each
// account is one atomic delete; a failing account is logged and skipped so
// the remaining accounts still get swept.
func (srv *retentionService) Sweep(ctx context.Context) (*usecase.SweepOutput, error) {
	cutoff := srv.now().Add(-srv.window)

	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		srv.logger.Error("Retention sweep failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts for retention sweep")
	}

	output := &usecase.SweepOutput{}
	for _, account := range accounts {
		removed, err := srv.historyRepo.DeleteOlderThan(ctx, account.ID, cutoff)
		if err != nil {
			output.AccountsFailed++
			srv.logger.Error("Retention sweep failed for account",
				slog.Any("accountID", account.ID),
				slog.Any("error", err))

			continue
		}

		output.AccountsSwept++
		output.RecordsRemoved += removed
	}

	srv.logger.Info("Retention sweep completed",
		slog.Time("cutoff", cutoff),
		slog.Int("accountsSwept", output.AccountsSwept),
		slog.Int("accountsFailed", output.AccountsFailed),
		slog.Int64("recordsRemoved", output.RecordsRemoved))

	return output, nil
}
