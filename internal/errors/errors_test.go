package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTrace(t *testing.T) {
	t.Run("wrapped error carries frames", func(t *testing.T) {
		err := Wrap(New("boom"), "load feed")

		trace := StackTrace(err)

		assert.NotEmpty(t, trace)
		assert.Contains(t, trace, "TestStackTrace")
	})

	t.Run("plain error has none", func(t *testing.T) {
		assert.Empty(t, StackTrace(New("boom")))
	})

	t.Run("nil error has none", func(t *testing.T) {
		assert.Empty(t, StackTrace(nil))
	})
}
