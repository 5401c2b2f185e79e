// Package session owns the single mutable game state (money, board,
// ledgers, meters) and sequences every entry point through one mutex. All
// game-rule precondition failures are silent no-ops: entry points are
// total and the session can never be corrupted by illegal input.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/hexplot/mergefarm/internal/board"
	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/meter"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// Rand is the random source for every probabilistic rule. *math/rand.Rand
// satisfies it; tests inject fixed sequences for deterministic replay.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Session is the top-level game state holder. State is ephemeral: it is
// created fresh at process start and discarded on shutdown.
type Session struct {
	mu sync.Mutex

	rng Rand
	bus event.Bus

	board        *board.Board
	ledger       *upgrade.Ledger
	seedMeter    *meter.Meter
	harvestMeter *meter.Meter

	money          int
	seedsInStorage int
	highestLevel   int

	lastTick time.Time
}

// New creates a fresh session: empty board with the outer ring locked,
// every upgrade at level 0, both meters empty, highest level 1.
func New(bus event.Bus, rng Rand) *Session {
	return &Session{
		rng:          rng,
		bus:          bus,
		board:        board.New(),
		ledger:       upgrade.NewLedger(),
		seedMeter:    meter.New(),
		harvestMeter: meter.New(),
		highestLevel: 1,
	}
}

// Advance credits elapsed wall-clock time to both meters and resolves any
// completions. The tick scheduler calls this on its cadence; each meter
// clamps the credited delta, so a long suspension never bursts through
// multiple completions.
func (s *Session) Advance(ctx context.Context, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastTick.IsZero() {
		s.lastTick = now
		return
	}
	elapsed := now.Sub(s.lastTick)
	s.lastTick = now
	if elapsed <= 0 {
		return
	}

	seedRate := upgrade.SeedRatePerMinute(s.ledger.Level(upgrade.KeySeedProduction))
	for i := s.seedMeter.Advance(elapsed, seedRate); i > 0; i-- {
		s.produceSeed(ctx)
	}

	harvestRate := upgrade.HarvestRatePerMinute(s.ledger.Level(upgrade.KeyHarvestSpeed))
	for i := s.harvestMeter.Advance(elapsed, harvestRate); i > 0; i-- {
		s.performHarvest(ctx)
	}
}

// Snapshot returns the full queryable state for the presentation layer.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.SessionSnapshot {
	return domain.SessionSnapshot{
		Money:                 s.money,
		SeedsInStorage:        s.seedsInStorage,
		SeedStorageCapacity:   upgrade.StorageCapacity(s.ledger.Level(upgrade.KeySeedStorage)),
		HighestPlantLevelEver: s.highestLevel,
		SeedMeterPercent:      s.seedMeter.Percent(),
		HarvestMeterPercent:   s.harvestMeter.Percent(),
		Board:                 s.board.Cells(),
	}
}

// Board returns the current board cell views.
func (s *Session) Board() []domain.CellView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Cells()
}

// publish emits a domain event. Publication happens inside the session
// lock, after the state mutation it describes, so subscribers observe
// events in mutation order.
func (s *Session) publish(ctx context.Context, t event.Type, payload interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, event.New(t, payload))
}

// earnCoins credits money and emits the coins.earned event.
func (s *Session) earnCoins(ctx context.Context, amount int, source string, cellIndex int) {
	if amount <= 0 {
		return
	}
	s.money += amount
	s.publish(ctx, event.CoinsEarned, event.CoinsEarnedPayloadV1{
		Amount:    amount,
		Source:    source,
		CellIndex: cellIndex,
	})
}

// discoverLevel raises highestPlantLevelEver when a new record is set.
func (s *Session) discoverLevel(ctx context.Context, level int) bool {
	if level <= s.highestLevel {
		return false
	}
	s.highestLevel = level
	s.publish(ctx, event.LevelDiscovered, event.LevelDiscoveredPayloadV1{Level: level})
	return true
}
