package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalHooks_Go_ReturnedError(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	hooks := NewGlobalHooks(handler)

	hooks.Go(context.Background(), "syncFeed", func(context.Context) error {
		return errors.New("feed sync failed")
	})

	require.Eventually(t, func() bool { return len(handler.Logs()) == 1 }, time.Second, 5*time.Millisecond)

	record := handler.Logs()[0]
	assert.Equal(t, "feed sync failed", record.Message)
	assert.Equal(t, actionUnhandledRejection, record.Action)
}

func TestGlobalHooks_Go_Panic(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	hooks := NewGlobalHooks(handler)

	hooks.Go(context.Background(), "render", func(context.Context) error {
		panic("nil pet")
	})

	require.Eventually(t, func() bool { return len(handler.Logs()) == 1 }, time.Second, 5*time.Millisecond)

	record := handler.Logs()[0]
	assert.Contains(t, record.Message, "nil pet")
	assert.Equal(t, actionUncaughtException, record.Action)
}

func TestGlobalHooks_Go_Success(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	hooks := NewGlobalHooks(handler)
	done := make(chan struct{})

	hooks.Go(context.Background(), "noop", func(context.Context) error {
		close(done)

		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}

	assert.Never(t, func() bool { return len(handler.Logs()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestGlobalHooks_Recover(t *testing.T) {
	handler := createTestErrorHandler(t, nil)
	hooks := NewGlobalHooks(handler)

	assert.NotPanics(t, func() {
		defer hooks.Recover(context.Background(), "inline")
		panic(errors.New("bad state"))
	})

	logs := handler.Logs()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "bad state")
	assert.Equal(t, actionUncaughtException, logs[0].Action)
}
