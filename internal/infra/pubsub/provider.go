package pubsub

import (
	"context"
	"log/slog"

	"pawpost/config"
	"pawpost/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopReporter logs critical errors when no reporting sink is configured
type noopReporter struct {
	logger *slog.Logger
}

func (r *noopReporter) ReportCritical(ctx context.Context, report *service.CriticalErrorReport) error {
	r.logger.Debug("[NoopPubSub] Error reporting disabled, skipping",
		slog.String("code", string(report.Record.Code)),
		slog.String("message", report.Record.Message),
	)

	return nil
}

func (r *noopReporter) Close() error {
	return nil
}

// ReporterParams holds dependencies for ErrorReporter, injected by Fx
type ReporterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewErrorReporter creates an ErrorReporter based on configuration
func NewErrorReporter(params ReporterParams) (service.ErrorReporter, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || (cfg.Provider == config.PubSubProviderGoogle && cfg.TopicID == "") {
		logger.Info("Critical error reporting not configured, using no-op reporter")

		return &noopReporter{logger: logger}, nil
	}

	var reporter service.ErrorReporter
	var err error

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP error reporter", slog.String("endpoint", cfg.LocalEndpoint))

		reporter = NewLocalHTTPReporter(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}

		reporter, err = NewGoogleReporter(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ErrorReporter")

			return reporter.Close()
		},
	})

	return reporter, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewErrorReporter, NewSubscriber),
)
