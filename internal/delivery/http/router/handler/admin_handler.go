package handler

import (
	"log/slog"
	"net/http"

	"snaptext/internal/delivery/http/response"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers. The
// router guards every route here with the admin middleware.
type AdminHandler struct {
	accountUC  usecase.AccountUsecase
	approvalUC usecase.ApprovalUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(accountUC usecase.AccountUsecase, approvalUC usecase.ApprovalUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accountUC:  accountUC,
		approvalUC: approvalUC,
		logger:     logger,
	}
}

// ListAccounts returns every registered account.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUC.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// DeleteAccount removes an account and everything it owns. The admin
// account itself cannot be deleted.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": accountID.String()}, "Account deleted")
}

// ListPending returns the accounts still waiting for an approval decision.
func (h *AdminHandler) ListPending(c echo.Context) error {
	accounts, err := h.approvalUC.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Approve marks a pending account as approved. Approving an already
// approved account is a no-op.
func (h *AdminHandler) Approve(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.approvalUC.Approve(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": accountID.String()}, "Account approved")
}

// Reject marks a pending account as rejected. Rejecting an already
// rejected account is a no-op.
func (h *AdminHandler) Reject(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.approvalUC.Reject(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": accountID.String()}, "Account rejected")
}
