package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pawpost/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localReportSubscription = "projects/local/subscriptions/critical-errors"

// localHTTPReporter implements ErrorReporter by POSTing Pub/Sub push envelopes
// to a local endpoint, for development
type localHTTPReporter struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPReporter creates a critical error reporter for development
func NewLocalHTTPReporter(endpoint string, logger *slog.Logger) service.ErrorReporter {
	return &localHTTPReporter{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ReportCritical posts the report wrapped in a push envelope
func (r *localHTTPReporter) ReportCritical(ctx context.Context, report *service.CriticalErrorReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return errors.WithStack(err)
	}

	envelope := NewPushEnvelope(localReportSubscription, uuid.New().String(), payload, reportAttributes(report), time.Now())

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if report.RequestID != "" {
		req.Header.Set("X-Request-Id", report.RequestID)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("report endpoint returned non-success status: %d", resp.StatusCode)
	}

	r.logger.Info("[LocalPubSub] Critical error reported",
		slog.String("endpoint", r.endpoint),
		slog.String("code", string(report.Record.Code)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (r *localHTTPReporter) Close() error {
	return nil
}
