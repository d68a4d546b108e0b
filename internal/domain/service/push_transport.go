package service

import (
	"context"

	"pawpost/internal/domain/entity"
)

// MessageHandler reacts to an inbound push message
type MessageHandler func(ctx context.Context, msg *entity.RemoteMessage)

// TokenHandler reacts to a refreshed device token
type TokenHandler func(ctx context.Context, token string)

// PushTransport is the platform push-messaging layer of this installation
type PushTransport interface {
	// RequestPermission asks the platform for push authorization
	RequestPermission(ctx context.Context) (entity.AuthorizationStatus, error)

	// GetToken returns the device token issued to this installation
	GetToken(ctx context.Context) (string, error)

	// SubscribeToTopic subscribes this installation to a topic
	SubscribeToTopic(ctx context.Context, topic string) error

	// UnsubscribeFromTopic unsubscribes this installation from a topic
	UnsubscribeFromTopic(ctx context.Context, topic string) error

	// OnMessage registers the handler for messages arriving while the app is in the foreground
	OnMessage(handler MessageHandler)

	// SetBackgroundMessageHandler registers the handler for messages arriving in background or terminated state
	SetBackgroundMessageHandler(handler MessageHandler)

	// OnNotificationOpenedApp registers the handler for notification taps while the app is running
	OnNotificationOpenedApp(handler MessageHandler)

	// OnTokenRefresh registers the handler for device token rotation
	OnTokenRefresh(handler TokenHandler)

	// GetInitialNotification returns the notification that launched the app from cold start, once.
	// It returns nil when the app was not opened from a notification.
	GetInitialNotification(ctx context.Context) (*entity.RemoteMessage, error)
}
