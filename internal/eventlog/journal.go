// Package eventlog keeps a bounded in-memory journal of recent domain
// events so stateless clients (and reconnecting SSE consumers) can catch
// up on what they missed. The journal is presentation support only; the
// session never reads it back.
package eventlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hexplot/mergefarm/internal/event"
)

// DefaultSize is the journal capacity when none is configured.
const DefaultSize = 256

// Entry is one journaled domain event.
type Entry struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Journal is a fixed-capacity, insertion-ordered record of recent events.
// The LRU evicts the oldest entry once capacity is reached; entries are
// never read in a way that reorders them.
type Journal struct {
	mu      sync.Mutex
	entries *lru.Cache[string, Entry]
	now     func() time.Time
}

// NewJournal creates a journal holding up to size entries.
func NewJournal(size int) (*Journal, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}
	return &Journal{entries: cache, now: time.Now}, nil
}

// Register subscribes the journal to every domain event type on the bus.
func (j *Journal) Register(bus event.Bus) {
	event.SubscribeAll(bus, j.handle)
}

func (j *Journal) handle(_ context.Context, e event.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	id := uuid.NewString()
	j.entries.Add(id, Entry{
		ID:        id,
		Type:      string(e.Type),
		Timestamp: j.now().UnixMilli(),
		Payload:   e.Payload,
	})
	return nil
}

// Recent returns up to limit entries, oldest first. A non-positive limit
// returns everything retained.
func (j *Journal) Recent(limit int) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	keys := j.entries.Keys() // oldest to newest
	if limit > 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if entry, ok := j.entries.Peek(k); ok {
			out = append(out, entry)
		}
	}
	return out
}

// Len returns the number of retained entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.entries.Len()
}
