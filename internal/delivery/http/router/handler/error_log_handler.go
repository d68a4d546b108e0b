package handler

import (
	"net/http"

	"pawpost/internal/delivery/http/response"
	"pawpost/internal/domain/entity"
	"pawpost/internal/errors"
	"pawpost/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorLogHandler exposes the in-memory error log to the UI shell
type ErrorLogHandler struct {
	uc usecase.ErrorUsecase
}

// NewErrorLogHandler is the constructor for ErrorLogHandler
func NewErrorLogHandler(uc usecase.ErrorUsecase) *ErrorLogHandler {
	return &ErrorLogHandler{uc: uc}
}

// ReportErrorRequest is a failure raised inside the UI shell
type ReportErrorRequest struct {
	Message   string         `json:"message" validate:"required,max=2048"`
	Component string         `json:"component" validate:"max=128"`
	Function  string         `json:"function" validate:"max=128"`
	UserID    string         `json:"user_id" validate:"max=128"`
	Action    string         `json:"action" validate:"max=128"`
	Metadata  map[string]any `json:"metadata"`
}

// ListErrors returns the logged errors, optionally filtered by user and severity
func (h *ErrorLogHandler) ListErrors(c echo.Context) error {
	userID := c.QueryParam("userId")
	severityParam := c.QueryParam("severity")

	var severity entity.Severity
	if severityParam != "" {
		var ok bool
		if severity, ok = entity.ParseSeverity(severityParam); !ok {
			return response.BadRequest(c, "INVALID_SEVERITY", "severity must be one of low, medium, high, critical")
		}
	}

	var records []entity.ErrorRecord
	switch {
	case userID != "":
		records = h.uc.LogsByUser(userID)
	case severity != "":
		records = h.uc.LogsBySeverity(severity)
	default:
		records = h.uc.Logs()
	}

	if userID != "" && severity != "" {
		filtered := make([]entity.ErrorRecord, 0, len(records))
		for _, record := range records {
			if record.Severity == severity {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ReportError handles a failure raised by the UI shell
func (h *ErrorLogHandler) ReportError(c echo.Context) error {
	var req ReportErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid error report")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	record := h.uc.HandleError(c.Request().Context(), errors.New(req.Message), entity.ErrorContext{
		Component: req.Component,
		Function:  req.Function,
		UserID:    req.UserID,
		Action:    req.Action,
		Metadata:  req.Metadata,
	})

	return response.Success(c, http.StatusCreated, record, "Error recorded")
}

// ClearErrors empties the error log
func (h *ErrorLogHandler) ClearErrors(c echo.Context) error {
	h.uc.ClearLogs()

	return response.Success(c, http.StatusOK, nil, "Error log cleared")
}
