package usecase

import (
	"context"

	"pawpost/internal/domain/entity"
)

// NotificationUsecase coordinates push permission, device tokens, inbound message routing
// and notification documents. Failures are handled internally and surface as benign results.
type NotificationUsecase interface {
	// Initialize requests permission, stores the device token and attaches the inbound handlers
	Initialize(ctx context.Context, userID string)

	// State returns the current permission/token lifecycle state
	State() entity.NotificationState

	// RequestPermission reports whether push is authorized (or provisionally authorized)
	RequestPermission(ctx context.Context) bool

	// GetFCMToken returns the device token, or "" when it cannot be retrieved
	GetFCMToken(ctx context.Context) string

	// SaveFCMToken stores the current device token on the user document
	SaveFCMToken(ctx context.Context, userID string) bool

	// UpdateFCMToken refreshes the device token stored on the user document
	UpdateFCMToken(ctx context.Context, userID string) bool

	// RemoveFCMToken deletes the device token fields from the user document
	RemoveFCMToken(ctx context.Context, userID string) bool

	// SetupNotificationHandlers registers the foreground, background and opened-app handlers
	SetupNotificationHandlers(ctx context.Context)

	// HandleNotificationNavigation routes a notification payload to its screen
	HandleNotificationNavigation(ctx context.Context, data map[string]string)

	// SubscribeToTopic subscribes this installation to a topic
	SubscribeToTopic(ctx context.Context, topic string) bool

	// UnsubscribeFromTopic unsubscribes this installation from a topic
	UnsubscribeFromTopic(ctx context.Context, topic string) bool

	// SendNotificationToUser inserts a notification for a user that has a device token on file.
	// Users without a token get no notification and no error.
	SendNotificationToUser(ctx context.Context, userID string, input *entity.NotificationInput) (*entity.Notification, bool)

	// MarkNotificationAsRead sets read and readAt on a notification
	MarkNotificationAsRead(ctx context.Context, notificationID string) bool

	// GetUserNotifications returns the newest notifications of a user
	GetUserNotifications(ctx context.Context, userID string) []*entity.Notification
}
