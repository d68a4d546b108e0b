package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQuery is the elapsed time past which a statement is reported at warn
const slowQuery = 200 * time.Millisecond

// queryLogger routes gorm output into slog. Statements are attributed to the
// request that issued them when the context carries a request logger.
type queryLogger struct {
	base *slog.Logger
	mode gormlogger.LogLevel
	slow time.Duration
}

func newQueryLogger(base *slog.Logger, debug bool) *queryLogger {
	mode := gormlogger.Warn
	if debug {
		mode = gormlogger.Info
	}

	return &queryLogger{base: base, mode: mode, slow: slowQuery}
}

func (q *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.mode = mode

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (q *queryLogger) printf(ctx context.Context, need gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if q.base == nil || q.mode < need {
		return
	}

	q.loggerFor(ctx).LogAttrs(ctx, level, "store message", slog.String("message", fmt.Sprintf(format, args...)))
}

// Trace reports failed statements, then slow ones, then (in info mode) everything else.
// A missing row is an expected lookup result for the repositories and is not reported.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.base == nil || q.mode <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && q.mode >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "store statement failed", slog.String("error", err.Error())
	case q.slow > 0 && elapsed > q.slow && q.mode >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "store statement slow", slog.Duration("threshold", q.slow)
	case q.mode >= gormlogger.Info:
		level, msg = slog.LevelInfo, "store statement"
	default:
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	q.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (q *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, q.base)
}
