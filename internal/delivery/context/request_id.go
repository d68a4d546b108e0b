// Package context carries request-scoped values (request ID, logger) from the
// delivery layer down to services and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// echoRequestIDKey is the echo.Context store key for the request ID
const echoRequestIDKey = "request_id"

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = echo.HeaderXRequestID

// GetRequestID returns the request ID stored on the echo.Context, or "" when none was set.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID of ctx, or "" when none was set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequest tags ctx with requestID and a child of base carrying it.
// The child logger is returned for immediate use.
func WithRequest(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}
