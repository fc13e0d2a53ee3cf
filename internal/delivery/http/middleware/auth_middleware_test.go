package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/domain/entity"
	mockUsecase "snaptext/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Authenticate(mock.Anything, "bad-token").
		Return(nil, errors.New("invalid session token"))

	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	account := &entity.Account{
		ID:       uuid.New(),
		Username: "alice",
		Role:     entity.RoleStandard,
	}

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().
		Authenticate(mock.Anything, "good-token").
		Return(account, nil)

	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "Bearer good-token")

	var seen *entity.Account
	next := func(c echo.Context) error {
		seen, _ = deliverycontext.GetAccount(c)
		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account, seen)
}

func TestAuthMiddleware_RequireAdmin_NonAdmin(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetAccount(c, &entity.Account{
		ID:       uuid.New(),
		Username: "alice",
		Role:     entity.RoleStandard,
	})

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	// The gate fires before the handler can touch any resource.
	err := m.RequireAdmin(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_RequireAdmin_MissingAccount(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "")

	err := m.RequireAdmin(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_Admin(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC)

	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetAccount(c, &entity.Account{
		ID:       uuid.New(),
		Username: "admin",
		Role:     entity.RoleAdmin,
	})

	err := m.RequireAdmin(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
