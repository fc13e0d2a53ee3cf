// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/delivery/http/response"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountView is the sanitized account representation returned to
// clients. The password hash never crosses the delivery boundary.
type accountView struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	ApprovalState string    `json:"approvalState"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newAccountView(account *entity.Account) *accountView {
	return &accountView{
		ID:            account.ID,
		Username:      account.Username,
		Role:          string(account.Role),
		ApprovalState: string(account.ApprovalState),
		CreatedAt:     account.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request. New accounts start
// in the pending state but still receive a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"token":   output.Token,
		"account": newAccountView(output.Account),
	}, "Account registered, awaiting approval")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":   output.Token,
		"account": newAccountView(output.Account),
	}, "Login successful")
}

// Me returns the account resolved by the authentication middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}
