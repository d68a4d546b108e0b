// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pawpost/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository reads and writes the device token fields of user documents.
type UserRepository interface {
	// FindUserByID retrieves a user document by ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// SetFCMToken upserts the device token and its refresh timestamp onto the user document.
	SetFCMToken(ctx context.Context, userID, token string, updatedAt time.Time) error

	// RemoveFCMToken deletes the device token fields from the user document.
	RemoveFCMToken(ctx context.Context, userID string) error
}
