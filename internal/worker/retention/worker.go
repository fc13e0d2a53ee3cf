// Package retention runs the background history eviction loop.
package retention

import (
	"context"
	"log/slog"
	"time"

	"snaptext/config"
	"snaptext/internal/usecase"

	"go.uber.org/fx"
)

// Worker drives the retention usecase on a fixed cadence. One sweep runs
// immediately at startup so a process restart never extends the effective
// retention window, then the ticker takes over.
type Worker struct {
	retention usecase.RetentionUsecase
	interval  time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// WorkerParams holds dependencies for the retention worker, injected by Fx.
type WorkerParams struct {
	fx.In
	fx.Lifecycle

	Retention usecase.RetentionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWorker creates the retention worker and hooks it into the fx lifecycle.
func NewWorker(params WorkerParams) *Worker {
	interval := config.DefaultSweepInterval
	if params.Config != nil && params.Config.Retention != nil && params.Config.Retention.SweepInterval > 0 {
		interval = params.Config.Retention.SweepInterval
	}

	w := newWorker(params.Retention, interval, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})

	return w
}

func newWorker(retention usecase.RetentionUsecase, interval time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		retention: retention,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the sweep loop in its own goroutine.
func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info("Starting retention worker", slog.Duration("interval", w.interval))

	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep runs one pass. Failures are logged, never fatal: the next tick
// retries from scratch.
func (w *Worker) sweep(ctx context.Context) {
	if _, err := w.retention.Sweep(ctx); err != nil {
		w.logger.Error("Retention sweep failed", slog.Any("error", err))
	}
}

// Stop cancels the loop and waits for the in-flight sweep to finish, up to
// the caller's deadline.
func (w *Worker) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}

	w.logger.Info("Stopping retention worker")
	w.cancel()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
