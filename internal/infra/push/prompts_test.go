package push

import (
	"context"
	"fmt"
	"testing"

	"pawpost/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptQueue_AlertAndAnswer(t *testing.T) {
	ctx := context.Background()
	q := NewPromptQueue()
	viewed := 0

	require.NoError(t, q.Alert(ctx, service.Alert{
		Title: "Bella liked your photo",
		Actions: []service.AlertAction{
			{Label: "OK"},
			{Label: "View", Handler: func(context.Context) { viewed++ }},
		},
	}))

	pending := q.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, []string{"OK", "View"}, pending[0].Actions)

	err := q.Answer(ctx, pending[0].ID, "Share")
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Len(t, q.Pending(), 1)

	require.NoError(t, q.Answer(ctx, pending[0].ID, "View"))
	assert.Equal(t, 1, viewed)
	assert.Empty(t, q.Pending())

	err = q.Answer(ctx, pending[0].ID, "View")
	assert.True(t, errors.Is(err, ErrPromptNotFound))
	assert.Equal(t, 1, viewed)
}

func TestPromptQueue_AnswerWithoutHandler(t *testing.T) {
	ctx := context.Background()
	q := NewPromptQueue()
	require.NoError(t, q.Alert(ctx, service.Alert{Title: "t", Actions: []service.AlertAction{{Label: "OK"}}}))

	require.NoError(t, q.Answer(ctx, q.Pending()[0].ID, "OK"))
	assert.Empty(t, q.Pending())
}

func TestPromptQueue_DropsOldest(t *testing.T) {
	ctx := context.Background()
	q := NewPromptQueue()

	for i := range maxPendingPrompts + 3 {
		require.NoError(t, q.Alert(ctx, service.Alert{Title: fmt.Sprintf("p-%d", i)}))
	}

	pending := q.Pending()
	require.Len(t, pending, maxPendingPrompts)
	assert.Equal(t, "p-3", pending[0].Title)
}
