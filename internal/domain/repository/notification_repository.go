// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pawpost/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification document operations.
type NotificationRepository interface {
	// CreateNotification inserts a notification; the backend assigns its ID.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its ID.
	FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindNotificationsByUser retrieves at most limit notifications for a user, newest first.
	FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkAsRead sets read=true and readAt on a notification. Read is never reset.
	MarkAsRead(ctx context.Context, id string, readAt time.Time) error
}
