package service

import (
	"context"

	"pawpost/internal/domain/entity"
)

// CriticalErrorReport is the payload escalated for critical errors
type CriticalErrorReport struct {
	RequestID   string              `json:"request_id,omitempty"` // For distributed tracing
	ServiceName string              `json:"service_name"`
	Record      entity.ErrorRecord  `json:"record"`
	Context     entity.ErrorContext `json:"context"`
}

// ErrorReporter escalates critical errors to an external reporting sink
type ErrorReporter interface {
	// ReportCritical sends one critical error report
	ReportCritical(ctx context.Context, report *CriticalErrorReport) error

	// Close releases any resources held by the reporter
	Close() error
}
