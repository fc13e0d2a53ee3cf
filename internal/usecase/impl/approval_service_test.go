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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// approvalServiceFixtures holds all test dependencies for approval service tests.
type approvalServiceFixtures struct {
	service     usecase.ApprovalUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
}

func createTestApprovalService(t *testing.T) approvalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewApprovalService(ApprovalServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return approvalServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
	}
}

func expectDecisionTransaction(t *testing.T, fx approvalServiceFixtures, ctx context.Context, setup func(*mockRepo.MockAccountRepository)) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			setup(mockAccountRepo)

			return fn(mockFactory)
		})
}

func TestApprovalService_Approve_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:            accountID,
		Username:      "alice",
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalPending,
	}

	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		repo.EXPECT().UpdateApprovalState(ctx, accountID, entity.ApprovalApproved).Return(nil)
	})

	require.NoError(t, fx.service.Approve(ctx, accountID))
}

func TestApprovalService_Approve_AlreadyApprovedIsNoOp(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:            accountID,
		Username:      "alice",
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalApproved,
	}

	// No UpdateApprovalState expectation: repeating a decision writes nothing.
	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	require.NoError(t, fx.service.Approve(ctx, accountID))
}

func TestApprovalService_Reject_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:            accountID,
		Username:      "alice",
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalApproved,
	}

	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		repo.EXPECT().UpdateApprovalState(ctx, accountID, entity.ApprovalRejected).Return(nil)
	})

	require.NoError(t, fx.service.Reject(ctx, accountID))
}

func TestApprovalService_Reject_AlreadyRejectedIsNoOp(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:            accountID,
		Username:      "alice",
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalRejected,
	}

	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	require.NoError(t, fx.service.Reject(ctx, accountID))
}

func TestApprovalService_Approve_AdminProtected(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Account{
		ID:            adminID,
		Username:      "admin",
		Role:          entity.RoleAdmin,
		ApprovalState: entity.ApprovalApproved,
	}

	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, adminID).Return(admin, nil)
	})

	err := fx.service.Approve(ctx, adminID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminProtected)
}

func TestApprovalService_Approve_NotFound(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	accountID := uuid.New()

	expectDecisionTransaction(t, fx, ctx, func(repo *mockRepo.MockAccountRepository) {
		repo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)
	})

	err := fx.service.Approve(ctx, accountID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestApprovalService_ListPending(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	pending := []*entity.Account{
		{ID: uuid.New(), Username: "newer", ApprovalState: entity.ApprovalPending},
		{ID: uuid.New(), Username: "older", ApprovalState: entity.ApprovalPending},
	}

	fx.accountRepo.EXPECT().ListByApprovalState(ctx, entity.ApprovalPending).Return(pending, nil)

	got, err := fx.service.ListPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestApprovalService_ListPending_RepositoryError(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		ListByApprovalState(ctx, entity.ApprovalPending).
		Return(nil, errors.New("connection reset"))

	got, err := fx.service.ListPending(ctx)

	require.Error(t, err)
	assert.Nil(t, got)
}
