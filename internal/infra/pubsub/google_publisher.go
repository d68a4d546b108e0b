package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pawpost/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleReporter implements ErrorReporter using Google Cloud Pub/Sub
type googleReporter struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleReporter creates a critical error reporter publishing to a Pub/Sub topic
func NewGoogleReporter(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.ErrorReporter, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub error reporter initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleReporter{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// ReportCritical publishes a critical error report and waits for the server ack
func (r *googleReporter) ReportCritical(ctx context.Context, report *service.CriticalErrorReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: reportAttributes(report),
	}

	serverID, err := r.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	r.logger.Info("[GooglePubSub] Critical error reported",
		slog.String("code", string(report.Record.Code)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (r *googleReporter) Close() error {
	if r.publisher != nil {
		r.publisher.Stop()
	}
	if r.client != nil {
		return errors.WithStack(r.client.Close())
	}

	return nil
}

// reportAttributes builds message attributes for filtering and tracing
func reportAttributes(report *service.CriticalErrorReport) map[string]string {
	attributes := map[string]string{
		"code":     string(report.Record.Code),
		"severity": string(report.Record.Severity),
		"service":  report.ServiceName,
	}
	if report.Context.Component != "" {
		attributes["component"] = report.Context.Component
	}
	if report.RequestID != "" {
		attributes[AttrRequestID] = report.RequestID
	}

	return attributes
}
