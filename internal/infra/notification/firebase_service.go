package notification

import (
	"context"
	"log/slog"

	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/service"
	"pawpost/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// maxTopicTokens is the Firebase limit of tokens per topic management request
const maxTopicTokens = 1000

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates a push sender backed by Firebase Cloud Messaging.
// It returns nil when no messaging client is available.
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.PushSender {
	if client == nil {
		return nil
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// Send delivers a push notification to a single device token
func (s *firebaseService) Send(ctx context.Context, msg *service.PushMessage) (string, error) {
	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			s.logger.Warn("Device token rejected by push service", slog.Any("error", err))
		}

		return "", domainerrors.Firebase("send push notification", err)
	}

	return id, nil
}

// SubscribeToTopic subscribes device tokens to a topic
func (s *firebaseService) SubscribeToTopic(ctx context.Context, tokens []string, topic string) error {
	if err := checkTopicTokens(tokens); err != nil {
		return err
	}

	resp, err := s.client.SubscribeToTopic(ctx, tokens, topic)
	if err != nil {
		return domainerrors.Firebase("subscribe to topic", err)
	}

	return topicResponseError("subscribe to topic", topic, resp)
}

// UnsubscribeFromTopic removes device tokens from a topic
func (s *firebaseService) UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) error {
	if err := checkTopicTokens(tokens); err != nil {
		return err
	}

	resp, err := s.client.UnsubscribeFromTopic(ctx, tokens, topic)
	if err != nil {
		return domainerrors.Firebase("unsubscribe from topic", err)
	}

	return topicResponseError("unsubscribe from topic", topic, resp)
}

func checkTopicTokens(tokens []string) error {
	if len(tokens) == 0 {
		return domainerrors.Validation("topic management", errors.New("no device tokens given"))
	}

	if len(tokens) > maxTopicTokens {
		return domainerrors.Validation("topic management",
			errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxTopicTokens))
	}

	return nil
}

// topicResponseError reports the first per-token failure of a topic management response
func topicResponseError(op, topic string, resp *messaging.TopicManagementResponse) error {
	if resp == nil || resp.FailureCount == 0 || len(resp.Errors) == 0 {
		return nil
	}

	first := resp.Errors[0]

	return domainerrors.Firebase(op, errors.Errorf("topic %q: %d of %d tokens failed, first: %s",
		topic, resp.FailureCount, resp.FailureCount+resp.SuccessCount, first.Reason))
}
