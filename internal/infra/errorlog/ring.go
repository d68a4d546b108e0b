// Package errorlog keeps the most recent classified errors in memory.
package errorlog

import (
	"slices"
	"sync"

	"pawpost/internal/domain/entity"
)

// Ring is a bounded FIFO of error records. Once full, appending evicts the oldest record.
type Ring struct {
	mu      sync.RWMutex
	records []entity.ErrorRecord
	start   int
	size    int
}

// New creates an empty ring holding at most capacity records.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}

	return &Ring{records: make([]entity.ErrorRecord, capacity)}
}

// Append adds a record, evicting the oldest one when the ring is full.
func (r *Ring) Append(record entity.ErrorRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	capacity := len(r.records)
	if r.size < capacity {
		r.records[(r.start+r.size)%capacity] = record
		r.size++

		return
	}

	r.records[r.start] = record
	r.start = (r.start + 1) % capacity
}

// Snapshot returns the records oldest first.
func (r *Ring) Snapshot() []entity.ErrorRecord {
	return r.Filter(nil)
}

// Filter returns the records accepted by keep, oldest first. A nil keep accepts everything.
func (r *Ring) Filter(keep func(entity.ErrorRecord) bool) []entity.ErrorRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ErrorRecord, 0, r.size)
	for i := range r.size {
		record := r.records[(r.start+i)%len(r.records)]
		if keep == nil || keep(record) {
			out = append(out, record)
		}
	}

	return slices.Clip(out)
}

// Len returns the number of records held.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size
}

// Cap returns the maximum number of records held.
func (r *Ring) Cap() int {
	return len(r.records)
}

// Clear drops every record.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.records)
	r.start = 0
	r.size = 0
}
