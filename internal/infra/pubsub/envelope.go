package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"pawpost/internal/domain/entity"
	"pawpost/internal/errors"
)

// AttrRequestID is the message attribute carrying the request ID for tracing
const AttrRequestID = "request_id"

// PushEnvelope is the body Pub/Sub posts to push endpoints
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps payload the way Pub/Sub push delivery does
func NewPushEnvelope(subscription, messageID string, payload []byte, attributes map[string]string, publishedAt time.Time) *PushEnvelope {
	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(payload)
	env.Message.Attributes = attributes
	env.Message.MessageID = messageID
	env.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return env
}

// RemoteMessage decodes the envelope payload into an inbound push message
func (e *PushEnvelope) RemoteMessage() (*entity.RemoteMessage, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var publishedAt time.Time
	if e.Message.PublishTime != "" {
		if publishedAt, err = time.Parse(time.RFC3339, e.Message.PublishTime); err != nil {
			return nil, errors.Wrap(err, "parse publish time")
		}
	}

	return decodeRemoteMessage(data, e.Message.MessageID, publishedAt)
}

// decodeRemoteMessage parses a JSON push payload. The transport's message ID and
// publish time fill in fields the payload leaves empty.
func decodeRemoteMessage(data []byte, messageID string, publishedAt time.Time) (*entity.RemoteMessage, error) {
	var msg entity.RemoteMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(err, "parse push message")
	}

	if msg.MessageID == "" {
		msg.MessageID = messageID
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = publishedAt
	}

	return &msg, nil
}
