// Package deliverycontext carries request-scoped values between the
// delivery middlewares, handlers and the layers below them.
package deliverycontext

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"snaptext/internal/domain/entity"
)

// ContextKey is the type used for values stored on a request context.
type ContextKey string

const (
	// KeyRequestID holds the request correlation ID.
	KeyRequestID ContextKey = "request_id"
	// KeyLogger holds the request-scoped *slog.Logger.
	KeyLogger ContextKey = "logger"
	// KeyAccount holds the authenticated *entity.Account on an echo context.
	KeyAccount = "account"
)

// HeaderXRequestID is the header carrying the request correlation ID.
const HeaderXRequestID = "X-Request-ID"

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID stored on ctx, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(KeyRequestID).(string)
	return requestID, ok
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetAccount attaches the authenticated account to the echo context.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(KeyAccount, account)
}

// GetAccount returns the authenticated account from the echo context.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(KeyAccount).(*entity.Account)
	return account, ok
}
