package usecase

import (
	"context"

	"pawpost/internal/domain/entity"
)

// ErrorUsecase classifies, logs and escalates errors raised anywhere in the process
type ErrorUsecase interface {
	// HandleError classifies err, appends it to the error log and escalates critical errors
	HandleError(ctx context.Context, err error, ectx entity.ErrorContext) *entity.ErrorRecord

	// HandleAsyncError runs op and handles its failure; it returns false when op failed
	HandleAsyncError(ctx context.Context, op func(ctx context.Context) error, ectx entity.ErrorContext) bool

	// Logs returns every logged error, oldest first
	Logs() []entity.ErrorRecord

	// LogsByUser returns the logged errors raised for a user
	LogsByUser(userID string) []entity.ErrorRecord

	// LogsBySeverity returns the logged errors of one severity
	LogsBySeverity(severity entity.Severity) []entity.ErrorRecord

	// ClearLogs empties the error log
	ClearLogs()
}
