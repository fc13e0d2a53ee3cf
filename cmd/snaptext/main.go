package main

import (
	"context"
	"log/slog"
	"os"

	"snaptext/config"
	"snaptext/internal/delivery"
	"snaptext/internal/delivery/http"
	"snaptext/internal/delivery/http/middleware"
	"snaptext/internal/delivery/http/router/handler"
	"snaptext/internal/infra/auth"
	logs "snaptext/internal/infra/log"
	"snaptext/internal/infra/persistence/postgres"
	"snaptext/internal/usecase"
	"snaptext/internal/usecase/impl"
	"snaptext/internal/worker/retention"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdminAccount,
			retention.NewWorker,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewHistoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewApprovalService,
			impl.NewHistoryService,
			impl.NewRetentionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewHistoryHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdminAccount makes sure the fixed admin identity exists once the
// database is reachable. It runs after the persistence OnStart hook.
func seedAdminAccount(lc fx.Lifecycle, accountUC usecase.AccountUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := accountUC.EnsureAdminAccount(ctx); err != nil {
				return err
			}

			logger.Info("Admin account ready")
			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
