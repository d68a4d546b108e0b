// Package middleware holds the echo middleware shared by every HTTP entry point.
package middleware

import (
	"log/slog"

	deliverycontext "pawpost/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client-supplied request IDs
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an ID and a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and generates one otherwise.
// The ID and a child logger carrying it are stored on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !usableRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequest(c.Request().Context(), m.logger, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}

	return true
}
