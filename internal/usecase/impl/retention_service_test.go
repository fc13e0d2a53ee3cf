package impl

import (
	"context"
	"testing"
	"time"

	"snaptext/internal/domain/entity"
	mockRepo "snaptext/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retentionServiceFixtures holds all test dependencies for retention service tests.
type retentionServiceFixtures struct {
	service     *retentionService
	accountRepo *mockRepo.MockAccountRepository
	historyRepo *mockRepo.MockHistoryRepository
}

func createTestRetentionService(t *testing.T, now time.Time) retentionServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)

	service := &retentionService{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		window:      24 * time.Hour,
		now:         func() time.Time { return now },
		logger:      newDiscardLogger(),
	}

	return retentionServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		historyRepo: historyRepo,
	}
}

func TestRetentionService_Sweep_CutoffIsWindowBeforeNow(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	fx := createTestRetentionService(t, now)

	ctx := context.Background()
	accountID := uuid.New()
	wantCutoff := now.Add(-24 * time.Hour)

	fx.accountRepo.EXPECT().ListAll(ctx).Return([]*entity.Account{{ID: accountID}}, nil)
	fx.historyRepo.EXPECT().DeleteOlderThan(ctx, accountID, wantCutoff).Return(3, nil)

	output, err := fx.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, output.AccountsSwept)
	assert.Equal(t, int64(3), output.RecordsRemoved)

	// The boundary the cutoff draws: a 23h-old record survives, records
	// just past or far past the window are eligible for removal.
	assert.False(t, now.Add(-23*time.Hour).Before(wantCutoff))
	assert.True(t, now.Add(-24*time.Hour-time.Minute).Before(wantCutoff))
	assert.True(t, now.Add(-48*time.Hour).Before(wantCutoff))
}

func TestRetentionService_Sweep_NoAccountsIsNoOp(t *testing.T) {
	fx := createTestRetentionService(t, time.Now())

	ctx := context.Background()

	fx.accountRepo.EXPECT().ListAll(ctx).Return(nil, nil)

	output, err := fx.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, output.AccountsSwept)
	assert.Equal(t, 0, output.AccountsFailed)
	assert.Equal(t, int64(0), output.RecordsRemoved)
}

func TestRetentionService_Sweep_ContinuesPastFailingAccount(t *testing.T) {
	now := time.Now()
	fx := createTestRetentionService(t, now)

	ctx := context.Background()
	failingID := uuid.New()
	healthyID := uuid.New()
	cutoff := now.Add(-24 * time.Hour)

	fx.accountRepo.EXPECT().ListAll(ctx).Return([]*entity.Account{
		{ID: failingID},
		{ID: healthyID},
	}, nil)
	fx.historyRepo.EXPECT().
		DeleteOlderThan(ctx, failingID, cutoff).
		Return(int64(0), errors.New("deadlock detected"))
	fx.historyRepo.EXPECT().DeleteOlderThan(ctx, healthyID, cutoff).Return(int64(5), nil)

	output, err := fx.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, output.AccountsSwept)
	assert.Equal(t, 1, output.AccountsFailed)
	assert.Equal(t, int64(5), output.RecordsRemoved)
}

func TestRetentionService_Sweep_ListAccountsFailure(t *testing.T) {
	fx := createTestRetentionService(t, time.Now())

	ctx := context.Background()

	fx.accountRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused"))

	output, err := fx.service.Sweep(ctx)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestNewRetentionService_DefaultWindow(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)

	service := NewRetentionService(RetentionServiceParams{
		AccountRepo: accountRepo,
		HistoryRepo: historyRepo,
		Config:      nil,
		Logger:      newDiscardLogger(),
	})

	impl, ok := service.(*retentionService)
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, impl.window)
}
