package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequest(context.Background(), base, "req-42")
	logger.Info("hello")

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestGetters_Empty(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.DiscardHandler)

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}

func TestEchoRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}
