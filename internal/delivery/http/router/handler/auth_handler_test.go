package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/delivery/http/validator"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	mockUsecase "snaptext/internal/mocks/usecase"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:            uuid.New(),
		Username:      "alice",
		PasswordHash:  "$2a$10$secret-hash",
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalPending,
		CreatedAt:     time.Now(),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	account := newTestAccount()

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "password123"}).
		Return(&usecase.RegisterOutput{Token: "a-session-token", Account: account}, nil)

	h := NewAuthHandler(accountUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"password123"}`)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "a-session-token")
	assert.Contains(t, rec.Body.String(), `"approvalState":"pending"`)
	// The credential hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(accountUC, slog.Default())

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"short"}`)

	err := h.Register(c)
	assert.Error(t, err)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken)

	h := NewAuthHandler(accountUC, slog.Default())

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"password123"}`)

	err := h.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	account := newTestAccount()
	account.ApprovalState = entity.ApprovalApproved

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "password123"}).
		Return(&usecase.LoginOutput{Token: "a-session-token", Account: account}, nil)

	h := NewAuthHandler(accountUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"password123"}`)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a-session-token")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewAuthHandler(accountUC, slog.Default())

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Me(t *testing.T) {
	account := newTestAccount()

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(accountUC, slog.Default())

	c, rec := newJSONContext(t, http.MethodGet, "/auth/me", "")
	deliverycontext.SetAccount(c, account)

	err := h.Me(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), account.ID.String())
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
