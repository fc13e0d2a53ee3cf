package impl

import (
	"context"
	"testing"

	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/domain/repository"
	mockRepo "snaptext/internal/mocks/repository"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// historyServiceFixtures holds all test dependencies for history service tests.
type historyServiceFixtures struct {
	service     usecase.HistoryUsecase
	historyRepo *mockRepo.MockHistoryRepository
}

func createTestHistoryService(t *testing.T) historyServiceFixtures {
	historyRepo := mockRepo.NewMockHistoryRepository(t)

	service := NewHistoryService(HistoryServiceParams{
		HistoryRepo: historyRepo,
		Logger:      newDiscardLogger(),
	})

	return historyServiceFixtures{
		service:     service,
		historyRepo: historyRepo,
	}
}

func TestHistoryService_Submit_Success(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	recordID := uuid.New()
	input := &usecase.SubmitHistoryInput{
		AccountID:  accountID,
		PayloadRef: "captures/2026/08/shot-001.jpg",
		ResultText: "TOTAL 42.00",
	}

	fx.historyRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.HistoryRecord")).
		Run(func(ctx context.Context, record *entity.HistoryRecord) {
			record.ID = recordID
		}).
		Return(nil)

	record, err := fx.service.Submit(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, recordID, record.ID)
	assert.Equal(t, accountID, record.AccountID)
	assert.Equal(t, input.PayloadRef, record.PayloadRef)
	assert.Equal(t, input.ResultText, record.ResultText)
}

func TestHistoryService_Submit_MissingAccount(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	input := &usecase.SubmitHistoryInput{
		AccountID:  uuid.New(),
		PayloadRef: "captures/ghost.jpg",
		ResultText: "text",
	}

	fx.historyRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.HistoryRecord")).
		Return(repository.ErrAccountNotFound)

	record, err := fx.service.Submit(ctx, input)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestHistoryService_ListOwn(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	records := []*entity.HistoryRecord{
		{ID: uuid.New(), AccountID: accountID, ResultText: "newer"},
		{ID: uuid.New(), AccountID: accountID, ResultText: "older"},
	}

	fx.historyRepo.EXPECT().ListByAccount(ctx, accountID).Return(records, nil)

	got, err := fx.service.ListOwn(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestHistoryService_DeleteOwn_Success(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	recordID := uuid.New()

	fx.historyRepo.EXPECT().Delete(ctx, accountID, recordID).Return(nil)

	require.NoError(t, fx.service.DeleteOwn(ctx, accountID, recordID))
}

func TestHistoryService_DeleteOwn_ForeignRecordLooksMissing(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	recordID := uuid.New()

	fx.historyRepo.EXPECT().
		Delete(ctx, accountID, recordID).
		Return(repository.ErrHistoryRecordNotFound)

	err := fx.service.DeleteOwn(ctx, accountID, recordID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrHistoryRecordNotFound)
}
