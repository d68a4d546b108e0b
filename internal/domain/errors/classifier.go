package errors

import (
	"context"
	"net"
	"net/url"
	"strings"

	"pawpost/internal/domain/entity"
	"pawpost/internal/errors"

	"firebase.google.com/go/v4/errorutils"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/status"
)

// severityRule pairs a predicate with the severity it assigns
type severityRule struct {
	name     string
	matches  func(msg string, ectx entity.ErrorContext) bool
	severity entity.Severity
}

// severityRules are evaluated in order; the first match wins.
//
//nolint:gochecknoglobals
var severityRules = []severityRule{
	{
		name: "backend-permission-or-auth",
		matches: func(msg string, _ entity.ErrorContext) bool {
			return isBackendPermissionFailure(msg) ||
				containsAny(msg, "authentication", "unauthenticated", "unauthorized", "auth/")
		},
		severity: entity.SeverityCritical,
	},
	{
		name: "network-during-login",
		matches: func(msg string, ectx entity.ErrorContext) bool {
			return strings.Contains(msg, "network") && ectx.Action == "login"
		},
		severity: entity.SeverityHigh,
	},
	{
		name: "persistence",
		matches: func(msg string, _ entity.ErrorContext) bool {
			return containsAny(msg, "database", "firestore", "storage", "upload")
		},
		severity: entity.SeverityHigh,
	},
	{
		name: "input-or-timeout",
		matches: func(msg string, _ entity.ErrorContext) bool {
			return containsAny(msg, "validation", "invalid", "timeout")
		},
		severity: entity.SeverityMedium,
	},
}

// Classify maps err and its context to a stable code and a severity
func Classify(err error, ectx entity.ErrorContext) (entity.ErrorCode, entity.Severity) {
	if err == nil {
		return entity.ErrorCodeUnknown, entity.SeverityLow
	}

	return ClassifyCode(err), ClassifySeverity(err.Error(), ectx)
}

// ClassifyCode derives the error code from the error's declared kind
func ClassifyCode(err error) entity.ErrorCode {
	var kindErr *KindError
	if errors.As(err, &kindErr) && kindErr.Kind != KindUnknown {
		return codeForKind(kindErr.Kind)
	}

	if isBackendError(err) {
		return entity.ErrorCodeFirebase
	}

	if isNetworkError(err) {
		return entity.ErrorCodeNetwork
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return entity.ErrorCodeValidation
	}

	return codeFromMessage(strings.ToLower(err.Error()))
}

// codeFromMessage is the fallback for errors that declare no kind, such as
// failures relayed from the UI shell as plain text
func codeFromMessage(msg string) entity.ErrorCode {
	switch {
	case containsAny(msg, "firebase", "firestore"):
		return entity.ErrorCodeFirebase
	case strings.Contains(msg, "network"):
		return entity.ErrorCodeNetwork
	case strings.Contains(msg, "validation"):
		return entity.ErrorCodeValidation
	case containsAny(msg, "unauthenticated", "authentication", "auth/"):
		return entity.ErrorCodeAuth
	case strings.Contains(msg, "permission"):
		return entity.ErrorCodePermission
	default:
		return entity.ErrorCodeUnknown
	}
}

// ClassifySeverity runs the severity rules against the error message
func ClassifySeverity(message string, ectx entity.ErrorContext) entity.Severity {
	msg := strings.ToLower(message)
	for _, rule := range severityRules {
		if rule.matches(msg, ectx) {
			return rule.severity
		}
	}

	return entity.SeverityLow
}

func codeForKind(kind Kind) entity.ErrorCode {
	switch kind {
	case KindFirebase:
		return entity.ErrorCodeFirebase
	case KindNetwork:
		return entity.ErrorCodeNetwork
	case KindValidation:
		return entity.ErrorCodeValidation
	case KindAuth:
		return entity.ErrorCodeAuth
	case KindPermission:
		return entity.ErrorCodePermission
	default:
		return entity.ErrorCodeUnknown
	}
}

func isBackendPermissionFailure(msg string) bool {
	if containsAny(msg, "permission-denied", "permissiondenied") {
		return true
	}

	return strings.Contains(msg, "permission") && containsAny(msg, "firebase", "firestore")
}

// isBackendError reports whether err was raised by Firebase or a gRPC backend (Firestore)
func isBackendError(err error) bool {
	if _, ok := status.FromError(err); ok {
		return true
	}

	for cur := err; cur != nil; cur = unwrapOne(cur) {
		if isFirebaseError(cur) {
			return true
		}
	}

	return false
}

func isFirebaseError(err error) bool {
	return errorutils.IsInvalidArgument(err) ||
		errorutils.IsFailedPrecondition(err) ||
		errorutils.IsOutOfRange(err) ||
		errorutils.IsUnauthenticated(err) ||
		errorutils.IsPermissionDenied(err) ||
		errorutils.IsNotFound(err) ||
		errorutils.IsConflict(err) ||
		errorutils.IsAborted(err) ||
		errorutils.IsAlreadyExists(err) ||
		errorutils.IsResourceExhausted(err) ||
		errorutils.IsCancelled(err) ||
		errorutils.IsDataLoss(err) ||
		errorutils.IsUnknown(err) ||
		errorutils.IsInternal(err) ||
		errorutils.IsUnavailable(err) ||
		errorutils.IsDeadlineExceeded(err)
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error

	return errors.As(err, &urlErr)
}

func unwrapOne(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}

	return u.Unwrap()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
