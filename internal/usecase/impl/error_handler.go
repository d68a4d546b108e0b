package impl

import (
	"context"
	"log/slog"
	"time"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/service"
	"pawpost/internal/errors"
	"pawpost/internal/infra/errorlog"
	"pawpost/internal/usecase"

	"go.uber.org/fx"
)

// ErrorHandlerParams holds dependencies for the error handler, injected by Fx
type ErrorHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Reporter service.ErrorReporter
}

type errorHandler struct {
	log         *errorlog.Ring
	logger      *slog.Logger
	reporter    service.ErrorReporter
	serviceName string
	now         func() time.Time
}

// NewErrorHandler creates the process-wide error handler
func NewErrorHandler(params ErrorHandlerParams) usecase.ErrorUsecase {
	capacity := config.DefaultErrorLogCapacity
	if params.Config.Notification != nil && params.Config.Notification.ErrorLogCapacity > 0 {
		capacity = params.Config.Notification.ErrorLogCapacity
	}

	return &errorHandler{
		log:         errorlog.New(capacity),
		logger:      params.Logger,
		reporter:    params.Reporter,
		serviceName: params.Config.Env.ServiceName,
		now:         time.Now,
	}
}

// HandleError classifies err, appends it to the log and escalates critical errors
func (h *errorHandler) HandleError(ctx context.Context, err error, ectx entity.ErrorContext) *entity.ErrorRecord {
	if err == nil {
		return nil
	}

	code, severity := domainerrors.Classify(err, ectx)
	record := entity.ErrorRecord{
		Message:    err.Error(),
		Code:       code,
		StackTrace: errors.StackTrace(err),
		Timestamp:  h.now(),
		UserID:     ectx.UserID,
		Action:     ectx.Action,
		Severity:   severity,
	}

	h.log.Append(record)

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.LogAttrs(ctx, levelFor(severity), "[ErrorHandler] Error handled",
		slog.String("code", string(code)),
		slog.String("severity", string(severity)),
		slog.String("message", record.Message),
		slog.String("component", ectx.Component),
		slog.String("function", ectx.Function),
		slog.String("user_id", ectx.UserID),
		slog.String("action", ectx.Action),
	)

	if severity == entity.SeverityCritical {
		h.escalate(ctx, logger, record, ectx)
	}

	return &record
}

// escalate reports a critical error; reporter failures are logged and swallowed
func (h *errorHandler) escalate(ctx context.Context, logger *slog.Logger, record entity.ErrorRecord, ectx entity.ErrorContext) {
	logger.Error("[ErrorHandler] CRITICAL ERROR - escalating",
		slog.String("code", string(record.Code)),
		slog.String("message", record.Message),
	)

	if h.reporter == nil {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("[ErrorHandler] Critical error reporter panicked", slog.Any("panic", rec))
		}
	}()

	report := &service.CriticalErrorReport{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ServiceName: h.serviceName,
		Record:      record,
		Context:     ectx,
	}
	if err := h.reporter.ReportCritical(ctx, report); err != nil {
		logger.Error("[ErrorHandler] Failed to report critical error", slog.Any("error", err))
	}
}

// HandleAsyncError runs op; a failure (or panic) is handled and reported as false
func (h *errorHandler) HandleAsyncError(ctx context.Context, op func(ctx context.Context) error, ectx entity.ErrorContext) bool {
	_, ok := HandleAsync(ctx, h, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, ectx)

	return ok
}

// Logs returns every logged error, oldest first
func (h *errorHandler) Logs() []entity.ErrorRecord {
	return h.log.Snapshot()
}

// LogsByUser returns the logged errors raised for userID
func (h *errorHandler) LogsByUser(userID string) []entity.ErrorRecord {
	return h.log.Filter(func(r entity.ErrorRecord) bool {
		return r.UserID == userID
	})
}

// LogsBySeverity returns the logged errors of one severity
func (h *errorHandler) LogsBySeverity(severity entity.Severity) []entity.ErrorRecord {
	return h.log.Filter(func(r entity.ErrorRecord) bool {
		return r.Severity == severity
	})
}

// ClearLogs empties the error log
func (h *errorHandler) ClearLogs() {
	h.log.Clear()
}

// HandleAsync runs op and returns its value. When op fails or panics the failure is
// handed to handler and the zero value is returned with ok=false; callers must treat
// that as "failed, already logged".
func HandleAsync[T any](ctx context.Context, handler usecase.ErrorUsecase, op func(ctx context.Context) (T, error), ectx entity.ErrorContext) (value T, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			value, ok = zero, false
			handler.HandleError(ctx, panicError(rec), ectx)
		}
	}()

	value, err := op(ctx)
	if err != nil {
		handler.HandleError(ctx, err, ectx)

		var zero T

		return zero, false
	}

	return value, true
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return errors.Wrap(err, "panic")
	}

	return errors.Errorf("panic: %v", rec)
}

func levelFor(severity entity.Severity) slog.Level {
	switch severity {
	case entity.SeverityCritical, entity.SeverityHigh:
		return slog.LevelError
	case entity.SeverityMedium:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
