package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexplot/mergefarm/internal/board"
	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

func TestNewSessionState(t *testing.T) {
	s, _ := newTestSession(t, nil)

	snap := s.Snapshot()
	assert.Zero(t, snap.Money)
	assert.Zero(t, snap.SeedsInStorage)
	assert.Equal(t, 1, snap.SeedStorageCapacity)
	assert.Equal(t, 1, snap.HighestPlantLevelEver)
	assert.Zero(t, snap.SeedMeterPercent)
	assert.Zero(t, snap.HarvestMeterPercent)
	require.Len(t, snap.Board, board.CellCount)
}

func TestAdvanceFirstTickIsBaseline(t *testing.T) {
	s, _ := newTestSession(t, nil)
	ctx := context.Background()
	start := time.Now()

	// The first tick only records the baseline; no time is credited.
	s.Advance(ctx, start)
	assert.Zero(t, s.Snapshot().SeedMeterPercent)

	// 50ms at 3/min credits 0.25% to each meter.
	s.Advance(ctx, start.Add(50*time.Millisecond))
	snap := s.Snapshot()
	assert.InDelta(t, 0.25, snap.SeedMeterPercent, 1e-9)
	assert.InDelta(t, 0.25, snap.HarvestMeterPercent, 1e-9)
}

func TestAdvanceIgnoresClockRewind(t *testing.T) {
	s, _ := newTestSession(t, nil)
	ctx := context.Background()
	start := time.Now()

	s.Advance(ctx, start)
	s.Advance(ctx, start.Add(-time.Second))
	assert.Zero(t, s.Snapshot().SeedMeterPercent)
}

func TestAdvanceCompletionProducesSeed(t *testing.T) {
	s, rec := newTestSession(t, nil)
	ctx := context.Background()
	start := time.Now()

	// 3/min fills in 20s; 50ms ticks keep every step under the clamp.
	s.Advance(ctx, start)
	now := start
	for i := 0; i < 401; i++ {
		now = now.Add(50 * time.Millisecond)
		s.Advance(ctx, now)
	}

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.SeedsInStorage)
	require.Len(t, rec.ofType(event.SeedProduced), 1)
}

func TestSnapshotMoneyAfterActivity(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.money = 1234
	s.seedsInStorage = 1
	s.ledger.Increment(upgrade.KeySeedStorage)

	snap := s.Snapshot()
	assert.Equal(t, 1234, snap.Money)
	assert.Equal(t, 1, snap.SeedsInStorage)
	assert.Equal(t, 2, snap.SeedStorageCapacity)
}

func TestSnapshotDetachedFromBoard(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.highestLevel = 10
	s.board.PlaceItem(4, domain.NewCrop("a", 2))
	s.board.PlaceItem(9, domain.NewCrop("b", 2))

	before := s.Snapshot()
	require.NotNil(t, before.Board[9].Item)
	require.Equal(t, 2, before.Board[9].Item.Level)

	// The merge bumps the target crop's level in place; a snapshot taken
	// earlier must keep showing the pre-merge board.
	outcome := s.AttemptMerge(context.Background(), 4, 9)
	require.Equal(t, domain.MergeKindMerged, outcome.Kind)
	assert.Equal(t, 2, before.Board[9].Item.Level)
	assert.Equal(t, 3, s.Snapshot().Board[9].Item.Level)
}

// runScript drives a session through a fixed command sequence.
func runScript(s *Session) {
	ctx := context.Background()
	for i := 0; i < 30; i++ {
		s.TapPlant(ctx)
	}
	// Merge whatever pairs ended up on the board.
	for _, src := range []int{4, 5, 8, 10, 13, 14} {
		s.AttemptMerge(ctx, src, 9)
	}
	for i := 0; i < 14; i++ {
		s.TapHarvest(ctx)
	}
	s.Purchase(ctx, upgrade.CategorySeeds, upgrade.KeySeedStorage)
}

func TestDeterministicReplay(t *testing.T) {
	// Two sessions with the same seed and the same command script must
	// end in identical states.
	a := New(event.NewMemoryBus(), rand.New(rand.NewSource(1234)))
	b := New(event.NewMemoryBus(), rand.New(rand.NewSource(1234)))

	runScript(a)
	runScript(b)

	snapA, snapB := a.Snapshot(), b.Snapshot()
	assert.Equal(t, snapA.Money, snapB.Money)
	assert.Equal(t, snapA.SeedsInStorage, snapB.SeedsInStorage)
	assert.Equal(t, snapA.HighestPlantLevelEver, snapB.HighestPlantLevelEver)
	require.Len(t, snapB.Board, len(snapA.Board))
	for i := range snapA.Board {
		assert.Equal(t, snapA.Board[i].Locked, snapB.Board[i].Locked, "cell %d", i)
		assert.Equal(t, snapA.Board[i].Fertile, snapB.Board[i].Fertile, "cell %d", i)
		if snapA.Board[i].Item == nil {
			assert.Nil(t, snapB.Board[i].Item, "cell %d", i)
		} else {
			require.NotNil(t, snapB.Board[i].Item, "cell %d", i)
			assert.Equal(t, snapA.Board[i].Item.Level, snapB.Board[i].Item.Level, "cell %d", i)
		}
	}
}
