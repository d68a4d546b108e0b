package boundary

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"pawpost/internal/usecase"
)

// Registry holds the boundaries of every screen served by the process
type Registry struct {
	handler usecase.ErrorUsecase
	logger  *slog.Logger

	mu         sync.RWMutex
	boundaries map[string]*Boundary
}

// NewRegistry creates an empty registry whose boundaries report to handler
func NewRegistry(handler usecase.ErrorUsecase, logger *slog.Logger) *Registry {
	return &Registry{
		handler:    handler,
		logger:     logger,
		boundaries: make(map[string]*Boundary),
	}
}

// Register returns the boundary of the named screen, creating it on first use.
// Options only apply when the boundary is created.
func (r *Registry) Register(name string, opts ...Option) *Boundary {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.boundaries[name]; ok {
		return b
	}

	b := New(name, r.handler, opts...)
	if b.onError == nil {
		b.onError = r.logFailure(name)
	}
	r.boundaries[name] = b

	return b
}

// Lookup returns the boundary of the named screen
func (r *Registry) Lookup(name string) (*Boundary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.boundaries[name]

	return b, ok
}

// Names lists the registered screens in order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.boundaries))
}

func (r *Registry) logFailure(name string) ErrorCallback {
	return func(ctx context.Context, err error, _ string) {
		r.logger.WarnContext(ctx, "Screen switched to fallback",
			slog.String("screen", name),
			slog.Any("error", err),
		)
	}
}
