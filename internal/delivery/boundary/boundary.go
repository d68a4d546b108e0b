// Package boundary traps failures raised while rendering a screen and swaps in a
// fallback view until the user retries.
package boundary

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"pawpost/internal/domain/entity"
	"pawpost/internal/errors"
	"pawpost/internal/usecase"
)

const (
	componentName = "ErrorBoundary"

	// MetaComponentStack is the error-context metadata key holding the render stack
	MetaComponentStack = "componentStack"

	fallbackMessage = "Something went wrong while loading this screen."
	reportMessage   = "Thanks for reporting this problem. We will look into it."
)

// RenderFunc produces the content of a screen
type RenderFunc func(ctx context.Context) (any, error)

// ErrorCallback is invoked after a render failure has been handled
type ErrorCallback func(ctx context.Context, err error, componentStack string)

// View is what a boundary hands back to the UI shell
type View struct {
	Screen   string `json:"screen"`
	Fallback bool   `json:"fallback"`
	Content  any    `json:"content,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Acknowledgement confirms a user-initiated report
type Acknowledgement struct {
	Screen  string `json:"screen"`
	Message string `json:"message"`
}

// Option configures a Boundary
type Option func(*Boundary)

// WithOnError registers a callback run after each trapped failure
func WithOnError(fn ErrorCallback) Option {
	return func(b *Boundary) {
		b.onError = fn
	}
}

// Boundary wraps the render function of one screen
type Boundary struct {
	name    string
	handler usecase.ErrorUsecase
	onError ErrorCallback

	mu      sync.Mutex
	failed  bool
	lastErr error
}

// New creates a boundary for the named screen
func New(name string, handler usecase.ErrorUsecase, opts ...Option) *Boundary {
	b := &Boundary{
		name:    name,
		handler: handler,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Name returns the screen name
func (b *Boundary) Name() string {
	return b.name
}

// Failed reports whether the boundary is showing its fallback
func (b *Boundary) Failed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.failed
}

// Render runs render unless the boundary is already in its fallback state.
// A returned error or a panic switches the boundary to the fallback view.
func (b *Boundary) Render(ctx context.Context, render RenderFunc) View {
	if view, ok := b.fallbackView(); ok {
		return view
	}

	content, stack, err := b.run(ctx, render)
	if err == nil {
		return View{Screen: b.name, Content: content}
	}

	b.mu.Lock()
	b.failed = true
	b.lastErr = err
	b.mu.Unlock()

	b.handler.HandleError(ctx, err, entity.ErrorContext{
		Component: componentName,
		Function:  b.name,
		Metadata:  map[string]any{MetaComponentStack: stack},
	})

	if b.onError != nil {
		b.onError(ctx, err, stack)
	}

	return View{Screen: b.name, Fallback: true, Message: fallbackMessage, Error: err.Error()}
}

// Retry leaves the fallback state; the next render runs the screen again
func (b *Boundary) Retry() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failed = false
	b.lastErr = nil
}

// Report acknowledges a user report of the current failure
func (b *Boundary) Report() Acknowledgement {
	return Acknowledgement{Screen: b.name, Message: reportMessage}
}

func (b *Boundary) fallbackView() (View, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.failed {
		return View{}, false
	}

	view := View{Screen: b.name, Fallback: true, Message: fallbackMessage}
	if b.lastErr != nil {
		view.Error = b.lastErr.Error()
	}

	return view, true
}

//nolint:nonamedreturns
func (b *Boundary) run(ctx context.Context, render RenderFunc) (content any, stack string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = panicError(rec)
			stack = string(debug.Stack())
		}
	}()

	content, err = render(ctx)
	if err != nil {
		stack = errors.StackTrace(err)
		if stack == "" {
			stack = string(debug.Stack())
		}
	}

	return content, stack, err
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return errors.WithStack(err)
	}

	return errors.Errorf("render panic: %s", fmt.Sprint(rec))
}
