// Package middleware holds the echo error handler of the local API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/errors"
	"pawpost/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const httpComponent = "HTTP"

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger  *slog.Logger
	handler usecase.ErrorUsecase
}

// NewErrorMiddleware creates a new error handling middleware. Unexpected errors
// are forwarded to the error handler so they show up in the error log.
func NewErrorMiddleware(logger *slog.Logger, handler usecase.ErrorUsecase) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		handler: handler,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.write(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message(),
			domainerrors.ErrValidationFailed.ErrorCode(), err.Error())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if m.handler != nil {
		m.handler.HandleError(ctx, err, entity.ErrorContext{
			Component: httpComponent,
			Function:  c.Path(),
			Action:    c.Request().Method,
		})
	}

	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(),
		domainerrors.ErrInternalError.ErrorCode(), err.Error())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message, code string, details any) {
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	body := domainerrors.Response{
		Success: false,
		Code:    status,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    code,
			Details: details,
		},
	}

	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
