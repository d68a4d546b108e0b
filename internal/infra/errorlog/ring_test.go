package errorlog

import (
	"strconv"
	"sync"
	"testing"

	"pawpost/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(i int) entity.ErrorRecord {
	return entity.ErrorRecord{Message: "error #" + strconv.Itoa(i), Severity: entity.SeverityLow}
}

func TestRing_EvictsOldestBeyondCapacity(t *testing.T) {
	ring := New(100)

	for i := 1; i <= 101; i++ {
		ring.Append(record(i))
	}

	snapshot := ring.Snapshot()
	require.Len(t, snapshot, 100)
	for idx, rec := range snapshot {
		assert.Equal(t, "error #"+strconv.Itoa(idx+2), rec.Message)
	}
}

func TestRing_NeverExceedsCapacity(t *testing.T) {
	ring := New(5)

	for i := 1; i <= 23; i++ {
		ring.Append(record(i))
		assert.LessOrEqual(t, ring.Len(), 5)
	}

	assert.Equal(t, 5, ring.Cap())
	assert.Equal(t, "error #19", ring.Snapshot()[0].Message)
	assert.Equal(t, "error #23", ring.Snapshot()[4].Message)
}

func TestRing_Filter(t *testing.T) {
	ring := New(10)
	ring.Append(entity.ErrorRecord{Message: "a", UserID: "u1"})
	ring.Append(entity.ErrorRecord{Message: "b", UserID: "u2"})
	ring.Append(entity.ErrorRecord{Message: "c", UserID: "u1"})

	got := ring.Filter(func(r entity.ErrorRecord) bool { return r.UserID == "u1" })

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "c", got[1].Message)
}

func TestRing_Clear(t *testing.T) {
	ring := New(3)
	ring.Append(record(1))
	ring.Append(record(2))

	ring.Clear()

	assert.Equal(t, 0, ring.Len())
	assert.Empty(t, ring.Snapshot())

	ring.Append(record(3))
	assert.Equal(t, []entity.ErrorRecord{record(3)}, ring.Snapshot())
}

func TestRing_SnapshotIsACopy(t *testing.T) {
	ring := New(2)
	ring.Append(record(1))

	snapshot := ring.Snapshot()
	snapshot[0].Message = "mutated"

	assert.Equal(t, "error #1", ring.Snapshot()[0].Message)
}

func TestRing_ConcurrentAppend(t *testing.T) {
	ring := New(50)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				ring.Append(record(g*100 + i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, ring.Len())
}
