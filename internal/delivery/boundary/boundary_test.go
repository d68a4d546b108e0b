package boundary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawpost/internal/domain/entity"
	mockUsecase "pawpost/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boundaryContext(screen string) any {
	return mock.MatchedBy(func(ectx entity.ErrorContext) bool {
		stack, _ := ectx.Metadata[MetaComponentStack].(string)

		return ectx.Component == "ErrorBoundary" && ectx.Function == screen && stack != ""
	})
}

func TestBoundary_Render_Success(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	b := New("notifications", handler)

	view := b.Render(context.Background(), func(context.Context) (any, error) {
		return []string{"a", "b"}, nil
	})

	assert.False(t, view.Fallback)
	assert.Equal(t, "notifications", view.Screen)
	assert.Equal(t, []string{"a", "b"}, view.Content)
	assert.False(t, b.Failed())
}

func TestBoundary_Render_ErrorSwitchesToFallback(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	renderErr := errors.New("firestore unavailable")
	handler.EXPECT().HandleError(mock.Anything, renderErr, boundaryContext("feed")).Return(&entity.ErrorRecord{}).Once()

	var callbackErr error
	var callbackStack string
	b := New("feed", handler, WithOnError(func(_ context.Context, err error, stack string) {
		callbackErr = err
		callbackStack = stack
	}))

	view := b.Render(context.Background(), func(context.Context) (any, error) {
		return nil, renderErr
	})

	assert.True(t, view.Fallback)
	assert.Nil(t, view.Content)
	assert.Equal(t, "firestore unavailable", view.Error)
	assert.NotEmpty(t, view.Message)
	assert.True(t, b.Failed())
	assert.Equal(t, renderErr, callbackErr)
	assert.NotEmpty(t, callbackStack)
}

func TestBoundary_Render_PanicIsTrapped(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	handler.EXPECT().HandleError(mock.Anything, mock.Anything, boundaryContext("profile")).
		Run(func(_ context.Context, err error, _ entity.ErrorContext) {
			assert.Contains(t, err.Error(), "nil pet")
		}).
		Return(&entity.ErrorRecord{}).Once()

	b := New("profile", handler)

	var view View
	require.NotPanics(t, func() {
		view = b.Render(context.Background(), func(context.Context) (any, error) {
			panic("nil pet")
		})
	})

	assert.True(t, view.Fallback)
	assert.True(t, b.Failed())
}

func TestBoundary_Render_FallbackSkipsRender(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	handler.EXPECT().HandleError(mock.Anything, mock.Anything, mock.Anything).Return(&entity.ErrorRecord{}).Once()

	b := New("feed", handler)
	b.Render(context.Background(), func(context.Context) (any, error) {
		return nil, errors.New("boom")
	})

	calls := 0
	view := b.Render(context.Background(), func(context.Context) (any, error) {
		calls++

		return "content", nil
	})

	assert.Zero(t, calls)
	assert.True(t, view.Fallback)
	assert.Equal(t, "boom", view.Error)
}

func TestBoundary_Retry(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	handler.EXPECT().HandleError(mock.Anything, mock.Anything, mock.Anything).Return(&entity.ErrorRecord{}).Twice()

	b := New("feed", handler)
	failing := func(context.Context) (any, error) {
		return nil, errors.New("still broken")
	}

	b.Render(context.Background(), failing)
	require.True(t, b.Failed())

	// a retry re-arms the screen without repairing it
	b.Retry()
	assert.False(t, b.Failed())
	view := b.Render(context.Background(), failing)
	assert.True(t, view.Fallback)

	b.Retry()
	view = b.Render(context.Background(), func(context.Context) (any, error) {
		return "ok", nil
	})
	assert.False(t, view.Fallback)
	assert.Equal(t, "ok", view.Content)
}

func TestBoundary_Report(t *testing.T) {
	b := New("feed", mockUsecase.NewMockErrorUsecase(t))

	ack := b.Report()

	assert.Equal(t, "feed", ack.Screen)
	assert.NotEmpty(t, ack.Message)
}

func TestRegistry(t *testing.T) {
	handler := mockUsecase.NewMockErrorUsecase(t)
	handler.EXPECT().HandleError(mock.Anything, mock.Anything, mock.Anything).Return(&entity.ErrorRecord{}).Once()
	registry := NewRegistry(handler, slog.New(slog.NewTextHandler(io.Discard, nil)))

	feed := registry.Register("feed")
	assert.Same(t, feed, registry.Register("feed"))
	registry.Register("chat")

	got, ok := registry.Lookup("feed")
	require.True(t, ok)
	assert.Same(t, feed, got)

	_, ok = registry.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"chat", "feed"}, registry.Names())

	// the default callback logs and does not panic
	view := feed.Render(context.Background(), func(context.Context) (any, error) {
		return nil, errors.New("boom")
	})
	assert.True(t, view.Fallback)
}
