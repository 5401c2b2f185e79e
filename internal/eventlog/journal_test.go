package eventlog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexplot/mergefarm/internal/event"
)

func newTestJournal(t *testing.T, size int) *Journal {
	t.Helper()
	j, err := NewJournal(size)
	require.NoError(t, err)
	j.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return j
}

func TestJournalRecordsInOrder(t *testing.T) {
	j := newTestJournal(t, 16)
	bus := event.NewMemoryBus()
	j.Register(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.New(event.SeedProduced, nil)))
	require.NoError(t, bus.Publish(ctx, event.New(event.SeedFired, nil)))
	require.NoError(t, bus.Publish(ctx, event.New(event.CropMerged, nil)))

	entries := j.Recent(0)
	require.Len(t, entries, 3)
	assert.Equal(t, string(event.SeedProduced), entries[0].Type)
	assert.Equal(t, string(event.SeedFired), entries[1].Type)
	assert.Equal(t, string(event.CropMerged), entries[2].Type)
	assert.Equal(t, int64(1700000000000), entries[0].Timestamp)
}

func TestJournalEvictsOldest(t *testing.T) {
	j := newTestJournal(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		payload := event.LevelDiscoveredPayloadV1{Level: i}
		require.NoError(t, j.handle(ctx, event.New(event.LevelDiscovered, payload)))
	}

	assert.Equal(t, 3, j.Len())

	entries := j.Recent(0)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		payload, ok := entry.Payload.(event.LevelDiscoveredPayloadV1)
		require.True(t, ok)
		assert.Equal(t, i+2, payload.Level, "the two oldest entries were evicted")
	}
}

func TestJournalRecentLimit(t *testing.T) {
	j := newTestJournal(t, 16)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, j.handle(ctx, event.New(event.CoinsEarned, event.CoinsEarnedPayloadV1{Amount: i})))
	}

	entries := j.Recent(4)
	require.Len(t, entries, 4)
	// The newest 4, still oldest first.
	for i, entry := range entries {
		payload := entry.Payload.(event.CoinsEarnedPayloadV1)
		assert.Equal(t, 6+i, payload.Amount)
	}

	assert.Len(t, j.Recent(100), 10)
	assert.Len(t, j.Recent(-1), 10)
}

func TestJournalDefaultSize(t *testing.T) {
	j, err := NewJournal(0)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < DefaultSize+10; i++ {
		require.NoError(t, j.handle(ctx, event.New(event.SeedProduced, fmt.Sprintf("p%d", i))))
	}
	assert.Equal(t, DefaultSize, j.Len())
}
