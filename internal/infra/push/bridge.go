// Package push implements the platform push layer of this installation. The UI
// shell reports permission, token and app state to the bridge over HTTP, and
// inbound messages reach it from Pub/Sub.
package push

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/service"
	"pawpost/internal/errors"

	"go.uber.org/fx"
)

// ErrTokenUnavailable is returned when the device has not reported a token yet
var ErrTokenUnavailable = errors.New("device token not yet issued")

var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.~%]{1,900}$`)

// DeviceBridge is the push transport of this installation
type DeviceBridge struct {
	sender service.PushSender
	logger *slog.Logger

	mu         sync.Mutex
	status     entity.AuthorizationStatus
	token      string
	foreground bool
	launch     *entity.RemoteMessage
	topics     map[string]struct{}

	onMessage    service.MessageHandler
	onBackground service.MessageHandler
	onOpened     service.MessageHandler
	onToken      service.TokenHandler
}

// BridgeParams holds dependencies for the DeviceBridge, injected by Fx
type BridgeParams struct {
	fx.In

	Logger *slog.Logger
	Sender service.PushSender `optional:"true"`
}

// NewDeviceBridge creates a bridge that starts in the foreground with no permission decision
func NewDeviceBridge(params BridgeParams) *DeviceBridge {
	return &DeviceBridge{
		sender:     params.Sender,
		logger:     params.Logger,
		status:     entity.AuthorizationNotDetermined,
		foreground: true,
		topics:     make(map[string]struct{}),
	}
}

// RequestPermission returns the authorization last reported by the device
func (b *DeviceBridge) RequestPermission(context.Context) (entity.AuthorizationStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.status, nil
}

// GetToken returns the device token last reported by the device
func (b *DeviceBridge) GetToken(context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.token == "" {
		return "", errors.WithStack(ErrTokenUnavailable)
	}

	return b.token, nil
}

// SubscribeToTopic subscribes the device token to topic through the push sender
func (b *DeviceBridge) SubscribeToTopic(ctx context.Context, topic string) error {
	if err := b.manageTopic(ctx, topic, true); err != nil {
		return err
	}

	b.mu.Lock()
	b.topics[topic] = struct{}{}
	b.mu.Unlock()

	return nil
}

// UnsubscribeFromTopic removes the device token from topic through the push sender
func (b *DeviceBridge) UnsubscribeFromTopic(ctx context.Context, topic string) error {
	if err := b.manageTopic(ctx, topic, false); err != nil {
		return err
	}

	b.mu.Lock()
	delete(b.topics, topic)
	b.mu.Unlock()

	return nil
}

func (b *DeviceBridge) manageTopic(ctx context.Context, topic string, subscribe bool) error {
	if !topicPattern.MatchString(topic) {
		return domainerrors.Validation("topic", errors.Errorf("invalid topic name %q", topic))
	}

	if b.sender == nil {
		return nil
	}

	token, err := b.GetToken(ctx)
	if err != nil {
		return err
	}

	if subscribe {
		return b.sender.SubscribeToTopic(ctx, []string{token}, topic)
	}

	return b.sender.UnsubscribeFromTopic(ctx, []string{token}, topic)
}

// Topics returns the subscribed topics in lexical order
func (b *DeviceBridge) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	topics := make([]string, 0, len(b.topics))
	for topic := range b.topics {
		topics = append(topics, topic)
	}
	slices.Sort(topics)

	return topics
}

// OnMessage sets the handler for messages delivered while the app is in the foreground
func (b *DeviceBridge) OnMessage(handler service.MessageHandler) {
	b.mu.Lock()
	b.onMessage = handler
	b.mu.Unlock()
}

// SetBackgroundMessageHandler sets the handler for messages delivered while the app is in the background
func (b *DeviceBridge) SetBackgroundMessageHandler(handler service.MessageHandler) {
	b.mu.Lock()
	b.onBackground = handler
	b.mu.Unlock()
}

// OnNotificationOpenedApp sets the handler for notifications tapped while the app is running
func (b *DeviceBridge) OnNotificationOpenedApp(handler service.MessageHandler) {
	b.mu.Lock()
	b.onOpened = handler
	b.mu.Unlock()
}

// OnTokenRefresh sets the handler receiving newly issued device tokens
func (b *DeviceBridge) OnTokenRefresh(handler service.TokenHandler) {
	b.mu.Lock()
	b.onToken = handler
	b.mu.Unlock()
}

// GetInitialNotification returns the launch notification once and forgets it
func (b *DeviceBridge) GetInitialNotification(context.Context) (*entity.RemoteMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := b.launch
	b.launch = nil

	return msg, nil
}

// SetPermission records the authorization decision reported by the device
func (b *DeviceBridge) SetPermission(status entity.AuthorizationStatus) {
	b.mu.Lock()
	b.status = status
	b.mu.Unlock()
}

// SetToken records the device token. A new non-empty token, including the first
// one issued, is passed to the refresh handler.
func (b *DeviceBridge) SetToken(ctx context.Context, token string) {
	b.mu.Lock()
	previous := b.token
	b.token = token
	handler := b.onToken
	b.mu.Unlock()

	if handler != nil && token != "" && token != previous {
		handler(ctx, token)
	}
}

// SetForeground records whether the app is in the foreground
func (b *DeviceBridge) SetForeground(foreground bool) {
	b.mu.Lock()
	b.foreground = foreground
	b.mu.Unlock()
}

// SetLaunchNotification records the notification that launched the app
func (b *DeviceBridge) SetLaunchNotification(msg *entity.RemoteMessage) {
	b.mu.Lock()
	b.launch = msg
	b.mu.Unlock()
}

// Deliver dispatches an inbound message to the handler for the current app state
func (b *DeviceBridge) Deliver(ctx context.Context, msg *entity.RemoteMessage) {
	b.mu.Lock()
	handler := b.onBackground
	if b.foreground {
		handler = b.onMessage
	}
	b.mu.Unlock()

	b.dispatch(ctx, handler, msg)
}

// Opened dispatches a notification tapped while the app was running
func (b *DeviceBridge) Opened(ctx context.Context, msg *entity.RemoteMessage) {
	b.mu.Lock()
	handler := b.onOpened
	b.mu.Unlock()

	b.dispatch(ctx, handler, msg)
}

func (b *DeviceBridge) dispatch(ctx context.Context, handler service.MessageHandler, msg *entity.RemoteMessage) {
	if handler == nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("[Push] No handler attached, message dropped",
			slog.String("message_id", msg.MessageID),
		)

		return
	}

	handler(ctx, msg)
}
