// Package navigation records the screens notification routing asks the UI shell to open.
package navigation

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
)

// maxIntents bounds the history; the oldest intent is dropped first
const maxIntents = 50

// IntentLog is a Navigator the UI shell polls for navigation requests
type IntentLog struct {
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	intents []entity.NavigationIntent
}

// NewIntentLog creates an empty intent log
func NewIntentLog(logger *slog.Logger) *IntentLog {
	return &IntentLog{logger: logger, now: time.Now}
}

// Navigate records a navigation request
func (l *IntentLog) Navigate(ctx context.Context, screen string, params map[string]string) error {
	intent := entity.NavigationIntent{
		Screen: screen,
		Params: maps.Clone(params),
		At:     l.now(),
	}

	l.mu.Lock()
	if len(l.intents) >= maxIntents {
		l.intents = l.intents[1:]
	}
	l.intents = append(l.intents, intent)
	l.mu.Unlock()

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).Debug("[Navigation] Intent recorded", slog.String("screen", screen))

	return nil
}

// History returns the recorded intents, oldest first
func (l *IntentLog) History() []entity.NavigationIntent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := make([]entity.NavigationIntent, len(l.intents))
	copy(history, l.intents)

	return history
}

// Current returns the latest intent, if any
func (l *IntentLog) Current() (entity.NavigationIntent, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.intents) == 0 {
		return entity.NavigationIntent{}, false
	}

	return l.intents[len(l.intents)-1], true
}
