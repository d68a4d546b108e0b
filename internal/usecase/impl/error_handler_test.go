package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"pawpost/config"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/service"
	mockSvc "pawpost/internal/mocks/service"
	"pawpost/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Notification: &config.NotificationConfig{
			HistoryLimit:     config.DefaultHistoryLimit,
			ErrorLogCapacity: config.DefaultErrorLogCapacity,
		},
	}
	cfg.Env.ServiceName = "pawpost-test"

	return cfg
}

func createTestErrorHandler(t *testing.T, reporter service.ErrorReporter) usecase.ErrorUsecase {
	t.Helper()

	return NewErrorHandler(ErrorHandlerParams{
		Config:   testConfig(),
		Logger:   discardLogger(),
		Reporter: reporter,
	})
}

func TestErrorHandler_HandleError_RecordsClassification(t *testing.T) {
	handler := createTestErrorHandler(t, nil)

	record := handler.HandleError(context.Background(),
		domainerrors.Validation("saveProfile", errors.New("invalid pet name")),
		entity.ErrorContext{Component: "ProfileScreen", UserID: "user-1", Action: "save"},
	)

	require.NotNil(t, record)
	assert.Equal(t, entity.ErrorCodeValidation, record.Code)
	assert.Equal(t, entity.SeverityMedium, record.Severity)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "save", record.Action)
	assert.NotEmpty(t, record.StackTrace)
	assert.False(t, record.Timestamp.IsZero())

	logs := handler.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, *record, logs[0])
}

func TestErrorHandler_HandleError_NilError(t *testing.T) {
	handler := createTestErrorHandler(t, nil)

	assert.Nil(t, handler.HandleError(context.Background(), nil, entity.ErrorContext{}))
	assert.Empty(t, handler.Logs())
}

func TestErrorHandler_LogIsCapped(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	ctx := context.Background()

	for i := 1; i <= 101; i++ {
		handler.HandleError(ctx, fmt.Errorf("error #%d", i), entity.ErrorContext{})
	}

	logs := handler.Logs()
	require.Len(t, logs, config.DefaultErrorLogCapacity)
	assert.Equal(t, "error #2", logs[0].Message)
	assert.Equal(t, "error #101", logs[len(logs)-1].Message)
}

func TestErrorHandler_FiltersAndClear(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	ctx := context.Background()

	handler.HandleError(ctx, errors.New("upload failed"), entity.ErrorContext{UserID: "user-1"})
	handler.HandleError(ctx, errors.New("request timeout"), entity.ErrorContext{UserID: "user-2"})
	handler.HandleError(ctx, errors.New("something odd"), entity.ErrorContext{UserID: "user-1"})

	byUser := handler.LogsByUser("user-1")
	require.Len(t, byUser, 2)
	assert.Equal(t, "upload failed", byUser[0].Message)
	assert.Equal(t, "something odd", byUser[1].Message)

	high := handler.LogsBySeverity(entity.SeverityHigh)
	require.Len(t, high, 1)
	assert.Equal(t, "upload failed", high[0].Message)

	assert.Len(t, handler.LogsBySeverity(entity.SeverityMedium), 1)
	assert.Len(t, handler.LogsBySeverity(entity.SeverityLow), 1)
	assert.Empty(t, handler.LogsBySeverity(entity.SeverityCritical))

	handler.ClearLogs()
	assert.Empty(t, handler.Logs())
	assert.Empty(t, handler.LogsByUser("user-1"))
}

func TestErrorHandler_CriticalIsEscalated(t *testing.T) {
	reporter := mockSvc.NewMockErrorReporter(t)
	handler := createTestErrorHandler(t, reporter)

	reporter.EXPECT().
		ReportCritical(mock.Anything, mock.MatchedBy(func(r *service.CriticalErrorReport) bool {
			return r.ServiceName == "pawpost-test" &&
				r.Record.Severity == entity.SeverityCritical &&
				r.Record.Code == entity.ErrorCodeFirebase &&
				r.Context.Component == "Feed"
		})).
		Return(nil).
		Once()

	record := handler.HandleError(context.Background(),
		errors.New("Firebase permission denied"),
		entity.ErrorContext{Component: "Feed"},
	)

	require.NotNil(t, record)
	assert.Equal(t, entity.SeverityCritical, record.Severity)
}

func TestErrorHandler_NonCriticalIsNotEscalated(t *testing.T) {
	reporter := mockSvc.NewMockErrorReporter(t)
	handler := createTestErrorHandler(t, reporter)

	handler.HandleError(context.Background(), errors.New("upload failed"), entity.ErrorContext{})

	reporter.AssertNotCalled(t, "ReportCritical", mock.Anything, mock.Anything)
}

func TestErrorHandler_ReporterFailureIsSwallowed(t *testing.T) {
	t.Run("returned error", func(t *testing.T) {
		reporter := mockSvc.NewMockErrorReporter(t)
		handler := createTestErrorHandler(t, reporter)

		reporter.EXPECT().ReportCritical(mock.Anything, mock.Anything).Return(errors.New("sink down")).Once()

		record := handler.HandleError(context.Background(), errors.New("unauthorized"), entity.ErrorContext{})
		require.NotNil(t, record)
		assert.Len(t, handler.Logs(), 1)
	})

	t.Run("panic", func(t *testing.T) {
		reporter := mockSvc.NewMockErrorReporter(t)
		handler := createTestErrorHandler(t, reporter)

		reporter.EXPECT().
			ReportCritical(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *service.CriticalErrorReport) error {
				panic("reporter exploded")
			}).
			Once()

		assert.NotPanics(t, func() {
			handler.HandleError(context.Background(), errors.New("unauthorized"), entity.ErrorContext{})
		})
		assert.Len(t, handler.Logs(), 1)
	})
}

func TestErrorHandler_HandleAsyncError(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	ctx := context.Background()

	ok := handler.HandleAsyncError(ctx, func(context.Context) error { return nil }, entity.ErrorContext{})
	assert.True(t, ok)
	assert.Empty(t, handler.Logs())

	ok = handler.HandleAsyncError(ctx, func(context.Context) error {
		return errors.New("network unreachable")
	}, entity.ErrorContext{Action: "login"})
	assert.False(t, ok)

	logs := handler.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.SeverityHigh, logs[0].Severity)
}

func TestHandleAsync(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	ctx := context.Background()

	t.Run("value", func(t *testing.T) {
		value, ok := HandleAsync(ctx, handler, func(context.Context) (int, error) { return 42, nil }, entity.ErrorContext{})
		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("failure yields zero value", func(t *testing.T) {
		value, ok := HandleAsync(ctx, handler, func(context.Context) (*entity.Notification, error) {
			return &entity.Notification{}, errors.New("database unavailable")
		}, entity.ErrorContext{})
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		handler.ClearLogs()

		value, ok := HandleAsync(ctx, handler, func(context.Context) (string, error) {
			panic("boom")
		}, entity.ErrorContext{Component: "Feed"})
		assert.False(t, ok)
		assert.Empty(t, value)

		logs := handler.Logs()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "boom")
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelError, levelFor(entity.SeverityCritical))
	assert.Equal(t, slog.LevelError, levelFor(entity.SeverityHigh))
	assert.Equal(t, slog.LevelWarn, levelFor(entity.SeverityMedium))
	assert.Equal(t, slog.LevelInfo, levelFor(entity.SeverityLow))
}
