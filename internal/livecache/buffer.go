// Package livecache keeps the most recently uploaded payloads in memory for
// the unauthenticated legacy read endpoints. It is not a source of truth:
// the store is, and the buffer starts empty on every restart.
package livecache

import (
	"sync"
	"time"
)

// DefaultCapacity is the history size used by the server.
const DefaultCapacity = 100

// Entry is one observed payload.
type Entry[T any] struct {
	UserID     uint      `json:"userId"`
	Username   string    `json:"username"`
	SessionID  uint      `json:"sessionId"`
	ReceivedAt time.Time `json:"receivedAt"`
	Payload    T         `json:"payload"`
}

// Buffer is a last-write-wins slot plus a FIFO ring of the last capacity
// entries. Safe for concurrent use.
type Buffer[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T] // circular
	head    int        // index of the oldest entry
	size    int
}

// New creates a buffer holding at most capacity entries.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer[T]{entries: make([]Entry[T], capacity)}
}

// Push records e as the latest entry, evicting the oldest when full.
func (b *Buffer[T]) Push(e Entry[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := len(b.entries)
	if b.size < capacity {
		b.entries[(b.head+b.size)%capacity] = e
		b.size++
		return
	}
	b.entries[b.head] = e
	b.head = (b.head + 1) % capacity
}

// Latest returns the most recent entry.
func (b *Buffer[T]) Latest() (Entry[T], bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.size == 0 {
		var zero Entry[T]
		return zero, false
	}
	return b.entries[(b.head+b.size-1)%len(b.entries)], true
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (b *Buffer[T]) Recent(limit int) []Entry[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if limit <= 0 || limit > b.size {
		limit = b.size
	}
	out := make([]Entry[T], 0, limit)
	for i := 0; i < limit; i++ {
		idx := (b.head + b.size - 1 - i) % len(b.entries)
		out = append(out, b.entries[idx])
	}
	return out
}

// Len returns the number of buffered entries.
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}
