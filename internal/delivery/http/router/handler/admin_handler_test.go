package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	mockUsecase "snaptext/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type adminHandlerFixtures struct {
	accountUC  *mockUsecase.MockAccountUsecase
	approvalUC *mockUsecase.MockApprovalUsecase
}

func createTestAdminHandler(t *testing.T) (*AdminHandler, *adminHandlerFixtures) {
	t.Helper()

	f := &adminHandlerFixtures{
		accountUC:  mockUsecase.NewMockAccountUsecase(t),
		approvalUC: mockUsecase.NewMockApprovalUsecase(t),
	}

	return NewAdminHandler(f.accountUC, f.approvalUC, slog.Default()), f
}

func TestAdminHandler_ListAccounts(t *testing.T) {
	h, f := createTestAdminHandler(t)

	accounts := []*entity.Account{
		{ID: uuid.New(), Username: "admin", Role: entity.RoleAdmin, ApprovalState: entity.ApprovalApproved},
		{ID: uuid.New(), Username: "alice", Role: entity.RoleStandard, ApprovalState: entity.ApprovalPending, PasswordHash: "secret-hash"},
	}
	f.accountUC.EXPECT().
		ListAccounts(mock.Anything).
		Return(accounts, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/admin/accounts", "")

	err := h.ListAccounts(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAdminHandler_DeleteAccount_Success(t *testing.T) {
	h, f := createTestAdminHandler(t)

	accountID := uuid.New()
	f.accountUC.EXPECT().
		DeleteAccount(mock.Anything, accountID).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/admin/accounts/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := h.DeleteAccount(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_DeleteAccount_InvalidID(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	c, rec := newJSONContext(t, http.MethodDelete, "/admin/accounts/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.DeleteAccount(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_DeleteAccount_AdminProtected(t *testing.T) {
	h, f := createTestAdminHandler(t)

	accountID := uuid.New()
	f.accountUC.EXPECT().
		DeleteAccount(mock.Anything, accountID).
		Return(domainerrors.ErrAdminProtected)

	c, _ := newJSONContext(t, http.MethodDelete, "/admin/accounts/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := h.DeleteAccount(c)
	assert.ErrorIs(t, err, domainerrors.ErrAdminProtected)
}

func TestAdminHandler_ListPending(t *testing.T) {
	h, f := createTestAdminHandler(t)

	pending := []*entity.Account{
		{ID: uuid.New(), Username: "alice", Role: entity.RoleStandard, ApprovalState: entity.ApprovalPending},
	}
	f.approvalUC.EXPECT().
		ListPending(mock.Anything).
		Return(pending, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/admin/approvals/pending", "")

	err := h.ListPending(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), pending[0].ID.String())
}

func TestAdminHandler_Approve_Success(t *testing.T) {
	h, f := createTestAdminHandler(t)

	accountID := uuid.New()
	f.approvalUC.EXPECT().
		Approve(mock.Anything, accountID).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPut, "/admin/approvals/"+accountID.String()+"/approve", "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := h.Approve(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_Reject_NotFound(t *testing.T) {
	h, f := createTestAdminHandler(t)

	accountID := uuid.New()
	f.approvalUC.EXPECT().
		Reject(mock.Anything, accountID).
		Return(domainerrors.ErrAccountNotFound)

	c, _ := newJSONContext(t, http.MethodPut, "/admin/approvals/"+accountID.String()+"/reject", "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := h.Reject(c)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAdminHandler_Approve_InvalidID(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	c, rec := newJSONContext(t, http.MethodPut, "/admin/approvals/not-a-uuid/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Approve(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
