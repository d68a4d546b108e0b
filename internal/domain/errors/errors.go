package errors

import (
	"fmt"
	"net/http"

	"pawpost/internal/errors"
)

// AppError is a failure that knows how it is presented to an HTTP caller
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// StatusError is an AppError declared up front with a fixed status and code
type StatusError struct {
	status  int
	code    string
	message string
	details string
}

func declare(status int, code, message string) *StatusError {
	return &StatusError{status: status, code: code, message: message}
}

func (e *StatusError) Error() string     { return e.message }
func (e *StatusError) HTTPCode() int     { return e.status }
func (e *StatusError) ErrorCode() string { return e.code }
func (e *StatusError) Message() string   { return e.message }
func (e *StatusError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying request-specific details
func (e *StatusError) WithDetails(details string) *StatusError {
	cp := *e
	cp.details = details

	return &cp
}

// WrapMessage wraps e with context while keeping it reachable through errors.As
func (e *StatusError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

//nolint:gochecknoglobals
var (
	ErrPromptNotFound = declare(http.StatusNotFound, "PROMPT_NOT_FOUND", "Prompt not found or already answered")
	ErrScreenNotFound = declare(http.StatusNotFound, "SCREEN_NOT_FOUND", "Screen not found")

	ErrInvalidInput     = declare(http.StatusBadRequest, "INVALID_INPUT", "Request body could not be parsed")
	ErrValidationFailed = declare(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

	// ErrOperationFailed reports a notification operation that returned false
	ErrOperationFailed = declare(http.StatusUnprocessableEntity, "OPERATION_FAILED",
		"The operation did not complete; the failure was recorded in the error log")
	ErrInternalError = declare(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// StoreError is a failed statement against the relational store
type StoreError struct {
	Op  string
	Err error
}

// StoreFailure wraps a driver error raised while performing op
func StoreFailure(err error, op string) AppError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *StoreError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *StoreError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *StoreError) Message() string   { return "Database execution failed" }
func (e *StoreError) Details() string   { return e.Op }

// Unwrap exposes the driver error to errors.As
func (e *StoreError) Unwrap() error {
	return e.Err
}
