package push

import (
	"context"
	"slices"
	"sync"
	"time"

	"pawpost/internal/domain/service"
	"pawpost/internal/errors"

	"github.com/google/uuid"
)

// maxPendingPrompts bounds the queue; the oldest prompt is dropped first
const maxPendingPrompts = 20

var (
	// ErrPromptNotFound is returned when answering a prompt that is not pending
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrUnknownAction is returned when a prompt has no action with the given label
	ErrUnknownAction = errors.New("unknown prompt action")
)

// Prompt is a pending alert as shown to the UI shell
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Actions   []string  `json:"actions"`
	CreatedAt time.Time `json:"created_at"`
}

type pendingPrompt struct {
	prompt  Prompt
	actions []service.AlertAction
}

// PromptQueue holds alerts until the UI shell answers them
type PromptQueue struct {
	mu      sync.Mutex
	pending []pendingPrompt
	now     func() time.Time
}

// NewPromptQueue creates an empty prompt queue
func NewPromptQueue() *PromptQueue {
	return &PromptQueue{now: time.Now}
}

// Alert enqueues an alert for the UI shell
func (q *PromptQueue) Alert(_ context.Context, alert service.Alert) error {
	labels := make([]string, 0, len(alert.Actions))
	for _, action := range alert.Actions {
		labels = append(labels, action.Label)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= maxPendingPrompts {
		q.pending = slices.Delete(q.pending, 0, 1)
	}

	q.pending = append(q.pending, pendingPrompt{
		prompt: Prompt{
			ID:        uuid.New().String(),
			Title:     alert.Title,
			Body:      alert.Body,
			Actions:   labels,
			CreatedAt: q.now(),
		},
		actions: slices.Clone(alert.Actions),
	})

	return nil
}

// Pending returns the unanswered prompts, oldest first
func (q *PromptQueue) Pending() []Prompt {
	q.mu.Lock()
	defer q.mu.Unlock()

	prompts := make([]Prompt, 0, len(q.pending))
	for _, p := range q.pending {
		prompts = append(prompts, p.prompt)
	}

	return prompts
}

// Answer removes the prompt and runs the handler of the chosen action
func (q *PromptQueue) Answer(ctx context.Context, id, label string) error {
	q.mu.Lock()
	idx := slices.IndexFunc(q.pending, func(p pendingPrompt) bool { return p.prompt.ID == id })
	if idx < 0 {
		q.mu.Unlock()

		return errors.WithStack(ErrPromptNotFound)
	}

	actionIdx := slices.IndexFunc(q.pending[idx].actions, func(a service.AlertAction) bool { return a.Label == label })
	if actionIdx < 0 {
		q.mu.Unlock()

		return errors.WithStack(ErrUnknownAction)
	}

	handler := q.pending[idx].actions[actionIdx].Handler
	q.pending = slices.Delete(q.pending, idx, idx+1)
	q.mu.Unlock()

	if handler != nil {
		handler(ctx)
	}

	return nil
}
