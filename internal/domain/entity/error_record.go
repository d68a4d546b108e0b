// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// ErrorCode is the stable classification code of a handled error.
type ErrorCode string

const (
	ErrorCodeFirebase   ErrorCode = "FIREBASE_ERROR"
	ErrorCodeNetwork    ErrorCode = "NETWORK_ERROR"
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrorCodeAuth       ErrorCode = "AUTH_ERROR"
	ErrorCodePermission ErrorCode = "PERMISSION_ERROR"
	ErrorCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// Severity is the ordinal impact level of a handled error.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch sev := Severity(s); sev {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return sev, true
	default:
		return "", false
	}
}

// ErrorContext describes where a handled error was raised.
type ErrorContext struct {
	Component string         `json:"component,omitempty"` // Component or screen that raised the error.
	Function  string         `json:"function,omitempty"`  // Function or operation name.
	UserID    string         `json:"user_id,omitempty"`   // Signed-in user, if known.
	Action    string         `json:"action,omitempty"`    // User action in progress (e.g. "login").
	Metadata  map[string]any `json:"metadata,omitempty"`  // Free-form diagnostics.
}

// ErrorRecord is one classified error kept in the error log. Records are never mutated.
type ErrorRecord struct {
	Message    string    `json:"message"`
	Code       ErrorCode `json:"code"`
	StackTrace string    `json:"stack_trace,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id,omitempty"`
	Action     string    `json:"action,omitempty"`
	Severity   Severity  `json:"severity"`
}
