package pubsub

import (
	"context"
	"log/slog"
	"time"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	"pawpost/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// MessageSink accepts inbound push messages for this installation
type MessageSink interface {
	Deliver(ctx context.Context, msg *entity.RemoteMessage)
}

// Subscriber pulls inbound push messages from a Pub/Sub subscription
type Subscriber struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	sink       MessageSink
	logger     *slog.Logger
}

// SubscriberParams holds dependencies for the Subscriber, injected by Fx
type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Sink   MessageSink
}

// NewSubscriber creates a Subscriber for the configured subscription.
// It returns nil when inbound messages are not pulled from Google Pub/Sub.
func NewSubscriber(params SubscriberParams) (*Subscriber, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != config.PubSubProviderGoogle || cfg.SubscriptionID == "" {
		params.Logger.Info("Pub/Sub subscription not configured, inbound messages arrive on /push only")

		return nil, nil
	}

	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	client, err := pubsub.NewClient(params.Ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s := &Subscriber{
		client:     client,
		subscriber: client.Subscriber(cfg.SubscriptionID),
		sink:       params.Sink,
		logger:     params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Pub/Sub subscriber")

			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Google Pub/Sub subscriber initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("subscription_id", cfg.SubscriptionID),
	)

	return s, nil
}

// Receive blocks, delivering messages to the sink until ctx is done
func (s *Subscriber) Receive(ctx context.Context) error {
	err := s.subscriber.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		s.handle(ctx, m.ID, m.Data, m.Attributes, m.PublishTime)
		m.Ack()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "receive push messages")
	}

	return nil
}

// handle delivers one message. Malformed payloads are logged and dropped since a
// redelivery would fail the same way.
func (s *Subscriber) handle(ctx context.Context, id string, data []byte, attributes map[string]string, publishedAt time.Time) {
	requestID := attributes[AttrRequestID]
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx, logger := deliverycontext.WithRequest(ctx, s.logger, requestID)

	msg, err := decodeRemoteMessage(data, id, publishedAt)
	if err != nil {
		logger.Error("[PubSub] Dropping malformed push message",
			slog.String("message_id", id),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("[PubSub] Push message received", slog.String("message_id", msg.MessageID))
	s.sink.Deliver(ctx, msg)
}
