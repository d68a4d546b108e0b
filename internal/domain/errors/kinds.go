package errors

import (
	"fmt"
)

// Kind is the declared category of a failure, used to derive its ErrorCode
type Kind int

const (
	KindUnknown Kind = iota
	KindFirebase
	KindNetwork
	KindValidation
	KindAuth
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindFirebase:
		return "firebase"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindPermission:
		return "permission"
	default:
		return "unknown"
	}
}

// KindError tags an error with its declared kind
type KindError struct {
	Kind Kind
	Op   string
	Err  error
}

// NewKindError creates a KindError for the failed operation op
func NewKindError(kind Kind, op string, err error) *KindError {
	return &KindError{Kind: kind, Op: op, Err: err}
}

// Error implements the error interface
func (e *KindError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *KindError) Unwrap() error {
	return e.Err
}

// Firebase tags err as a backend-framework failure
func Firebase(op string, err error) error {
	return NewKindError(KindFirebase, op, err)
}

// Network tags err as a connectivity failure
func Network(op string, err error) error {
	return NewKindError(KindNetwork, op, err)
}

// Validation tags err as an input validation failure
func Validation(op string, err error) error {
	return NewKindError(KindValidation, op, err)
}

// Auth tags err as an identity failure
func Auth(op string, err error) error {
	return NewKindError(KindAuth, op, err)
}

// Permission tags err as an authorization failure
func Permission(op string, err error) error {
	return NewKindError(KindPermission, op, err)
}
