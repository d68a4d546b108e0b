package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pawpost/config"
	"pawpost/internal/domain/lifecycle"
	"pawpost/internal/errors"
	"pawpost/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the relational store for users and notifications. The connection
// is verified and the two tables are migrated when the app starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres store requires a postgres section")
	}

	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres handle")
	}

	watcher := newPoolWatcher(params.Logger, sqlDB)
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}, &model.NotificationModel{}); err != nil {
				return errors.Wrap(err, "migrate users and notifications")
			}

			watcher.start()

			return nil
		},
		OnStop: func(context.Context) error {
			watcher.stop()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarn       = 50 * time.Millisecond
)

// poolWatcher samples the connection pool and logs when callers had to wait
// for a connection since the previous sample.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoolWatcher(logger *slog.Logger, db *sql.DB) *poolWatcher {
	return &poolWatcher{logger: logger, stats: db.Stats}
}

func (w *poolWatcher) start() {
	if w.logger == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(poolSampleInterval)
		defer ticker.Stop()

		prev := w.stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := w.stats()
				w.report(ctx, prev, cur)
				prev = cur
			}
		}
	}()
}

func (w *poolWatcher) stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	<-w.done
}

func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarn {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
