package middleware

import (
	"strings"

	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/delivery/http/response"
	"snaptext/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session authentication and
// admin authorization.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the bearer token and resolves it to a live
// account. The account is re-fetched on every request, so a deleted
// account is rejected even if its token has not yet expired.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		account, err := m.accountUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		// Expose the account to handlers and to the layers below.
		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

// RequireAdmin rejects non-admin accounts. It must be used AFTER the
// Authenticate middleware, and it runs before any resource lookup, so a
// non-admin probing an admin route always sees 403, never 404.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := deliverycontext.GetAccount(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: account information missing")
		}

		if !account.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		return next(c)
	}
}
