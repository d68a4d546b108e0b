package service

import (
	"context"
)

// PushMessage is an outbound push addressed to one device token
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushSender defines the server side of the push transport
type PushSender interface {
	// Send delivers a push message and returns the transport's message ID
	Send(ctx context.Context, msg *PushMessage) (string, error)

	// SubscribeToTopic subscribes the device tokens to a topic
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) error

	// UnsubscribeFromTopic removes the device tokens from a topic
	UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) error
}
