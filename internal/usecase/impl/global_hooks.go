package impl

import (
	"context"

	"pawpost/internal/domain/entity"
	"pawpost/internal/usecase"
)

const (
	globalComponent          = "global"
	actionUnhandledRejection = "unhandledRejection"
	actionUncaughtException  = "uncaughtException"
)

// GlobalHooks forwards failures escaping goroutine roots into the error handler
type GlobalHooks struct {
	handler usecase.ErrorUsecase
}

// NewGlobalHooks creates the process-level failure hooks
func NewGlobalHooks(handler usecase.ErrorUsecase) *GlobalHooks {
	return &GlobalHooks{handler: handler}
}

// Go runs fn on its own goroutine. A returned error is handled as an unhandled
// rejection and a panic as an uncaught exception; neither crashes the process.
func (g *GlobalHooks) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	go func() {
		defer g.Recover(ctx, name)

		if err := fn(ctx); err != nil {
			g.handler.HandleError(ctx, err, entity.ErrorContext{
				Component: globalComponent,
				Function:  name,
				Action:    actionUnhandledRejection,
			})
		}
	}()
}

// Recover must be deferred; it handles a panic as an uncaught exception
func (g *GlobalHooks) Recover(ctx context.Context, name string) {
	if rec := recover(); rec != nil {
		g.handler.HandleError(ctx, panicError(rec), entity.ErrorContext{
			Component: globalComponent,
			Function:  name,
			Action:    actionUncaughtException,
		})
	}
}
