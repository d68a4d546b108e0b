package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "reuses caller id", header: "req-123", wantReuse: true},
		{name: "generates when missing", header: ""},
		{name: "generates when too long", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "generates when it has spaces", header: "req 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)

			require.NoError(t, err)
			assert.True(t, hasLogger)
			assert.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, ctxID, deliverycontext.GetRequestID(c))
			if tt.wantReuse {
				assert.Equal(t, tt.header, ctxID)
			} else {
				assert.NotEqual(t, tt.header, ctxID)
			}
		})
	}
}

func TestAccessLog_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		wantLog string
		status  int
	}{
		{
			name:    "success is quiet outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			status:  http.StatusOK,
		},
		{
			name:    "success is logged in debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "level=INFO msg=\"request served\"",
			status:  http.StatusOK,
		},
		{
			name:    "server errors are logged at error",
			handler: func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") },
			wantLog: "level=ERROR msg=\"request failed\"",
			status:  http.StatusBadGateway,
		},
		{
			name:    "errors are always logged",
			handler: func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") },
			wantLog: "level=WARN msg=\"request rejected\"",
			status:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users/u1/notifications", nil), rec)

			err := NewAccessLog(logger, cfg).Handle(tt.handler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
