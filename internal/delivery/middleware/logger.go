package middleware

import (
	"log/slog"
	"time"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog writes one line per request. Requests answered below 400 are only
// logged in debug mode.
type AccessLog struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLog(logger *slog.Logger, cfg *config.Config) *AccessLog {
	return &AccessLog{logger: logger, debug: cfg.Env.Debug}
}

func (a *AccessLog) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// the error handler writes the status this line reports
			c.Error(err)
		}

		status := c.Response().Status
		if a.debug || status >= 400 {
			a.write(c, status, time.Since(start), err)
		}

		return nil
	}
}

func (a *AccessLog) write(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs,
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	)
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	msg, level := "request served", slog.LevelInfo
	switch {
	case status >= 500:
		msg, level = "request failed", slog.LevelError
	case status >= 400:
		msg, level = "request rejected", slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, a.logger).LogAttrs(ctx, level, msg, attrs...)
}
