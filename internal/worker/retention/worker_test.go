package retention

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "snaptext/internal/mocks/usecase"
	"snaptext/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_RunsOneSweepImmediately(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)

	swept := make(chan struct{}, 1)
	retention.EXPECT().
		Sweep(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(&usecase.SweepOutput{}, nil)

	// Interval far beyond the test horizon: only the immediate pass fires.
	w := newWorker(retention, time.Hour, newDiscardLogger())
	w.Start()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep after Start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
}

func TestWorker_SweepsAgainOnTick(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)

	sweeps := make(chan struct{}, 8)
	retention.EXPECT().
		Sweep(mock.Anything).
		Run(func(ctx context.Context) {
			sweeps <- struct{}{}
		}).
		Return(&usecase.SweepOutput{}, nil)

	w := newWorker(retention, 10*time.Millisecond, newDiscardLogger())
	w.Start()

	// Immediate pass plus at least one tick-driven pass.
	for i := 0; i < 2; i++ {
		select {
		case <-sweeps:
		case <-time.After(2 * time.Second):
			t.Fatal("expected a tick-driven sweep")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
}

func TestWorker_KeepsRunningAfterSweepFailure(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)

	sweeps := make(chan struct{}, 8)
	retention.EXPECT().
		Sweep(mock.Anything).
		Run(func(ctx context.Context) {
			sweeps <- struct{}{}
		}).
		Return(nil, errors.New("database unavailable"))

	w := newWorker(retention, 10*time.Millisecond, newDiscardLogger())
	w.Start()

	for i := 0; i < 2; i++ {
		select {
		case <-sweeps:
		case <-time.After(2 * time.Second):
			t.Fatal("expected the loop to survive a failing sweep")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
}

func TestWorker_StopWithoutStartIsNoOp(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)

	w := newWorker(retention, time.Hour, newDiscardLogger())

	require.NoError(t, w.Stop(context.Background()))
}
