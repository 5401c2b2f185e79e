package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexplot/mergefarm/internal/event"
)

// scriptedRand replays fixed draw sequences so probabilistic flows resolve
// deterministically. Exhausted sequences fall back to misses (0.999) and
// first choices (0).
type scriptedRand struct {
	floats []float64
	ints   []int
	fpos   int
	ipos   int
}

func (r *scriptedRand) Float64() float64 {
	if r.fpos >= len(r.floats) {
		return 0.999
	}
	v := r.floats[r.fpos]
	r.fpos++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if r.ipos >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ipos]
	r.ipos++
	return v % n
}

// eventRecorder captures every published domain event for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) record(_ context.Context, e event.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// newTestSession wires a session to a recording bus and a scripted random
// source.
func newTestSession(t *testing.T, rng Rand) (*Session, *eventRecorder) {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	bus := event.NewMemoryBus()
	rec := &eventRecorder{}
	event.SubscribeAll(bus, rec.record)
	s := New(bus, rng)
	require.NotNil(t, s)
	return s, rec
}

// Indices of the seven cells that start unlocked on a fresh board, and a
// few adjacency facts the tests rely on: 9 is the center and neighbors
// 4, 5, 8, 10, 13 and 14; 4 and 13 are not adjacent to each other.
var openCells = []int{4, 5, 8, 9, 10, 13, 14}
