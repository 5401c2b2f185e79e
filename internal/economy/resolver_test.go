package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqRand replays a fixed sequence of draws. Draws past the end repeat the
// last value.
type seqRand struct {
	values []float64
	pos    int
}

func (r *seqRand) Float64() float64 {
	if r.pos >= len(r.values) {
		return r.values[len(r.values)-1]
	}
	v := r.values[r.pos]
	r.pos++
	return v
}

func fixed(values ...float64) *seqRand {
	return &seqRand{values: values}
}

func TestCoinValue(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 5},
		{2, 10},
		{3, 20},
		{4, 40},
		{5, 80},
		{10, 2560},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoinValue(tt.level), "level %d", tt.level)
	}
}

func TestRollSeedTier(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		baseTier int
		chance   int
		want     int
	}{
		{"quality hit", 0.29, 2, 30, 3},
		{"quality miss", 0.30, 2, 30, 2},
		{"zero chance never hits", 0.0, 2, 0, 2},
		{"full chance always hits", 0.999, 1, 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RollSeedTier(fixed(tt.draw), tt.baseTier, tt.chance))
		})
	}
}

func TestRollLevelIncrease(t *testing.T) {
	tests := []struct {
		name         string
		draw         float64
		chance       int
		cropLevel    int
		highestEver  int
		want         int
	}{
		{"lucky roll doubles", 0.0, 50, 3, 10, 2},
		{"unlucky roll single", 0.9, 50, 3, 10, 1},
		{"frontier merge never skips", 0.0, 50, 3, 3, 1},
		{"one below frontier never skips", 0.0, 100, 4, 4, 1},
		{"two below frontier may skip", 0.0, 50, 3, 4, 2},
		{"zero chance", 0.0, 0, 3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RollLevelIncrease(fixed(tt.draw), tt.chance, tt.cropLevel, tt.highestEver)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuardPrecedesRoll(t *testing.T) {
	// At the frontier the rng must not even be consulted; the +1 is
	// unconditional.
	rng := fixed(0.0)
	got := RollLevelIncrease(rng, 100, 5, 5)
	assert.Equal(t, 1, got)
	assert.Zero(t, rng.pos, "no draw consumed")
}

func TestHarvestCellValue(t *testing.T) {
	tests := []struct {
		name          string
		level         int
		cropValueMult float64
		synergyMult   float64
		synergy       bool
		fertile       bool
		want          int
	}{
		{"base level 1", 1, 1.0, 1.0, false, false, 5},
		{"base level 3", 3, 1.0, 1.0, false, false, 20},
		{"crop value multiplier floors", 1, 1.3, 1.0, false, false, 6},
		{"synergy applies when flagged", 2, 1.0, 1.5, true, false, 15},
		{"synergy ignored when not flagged", 2, 1.0, 1.5, false, false, 10},
		{"fertile doubles", 2, 1.0, 1.0, false, true, 20},
		{"all multipliers stack", 2, 1.2, 1.5, true, true, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HarvestCellValue(tt.level, tt.cropValueMult, tt.synergyMult, tt.synergy, tt.fertile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergePayout(t *testing.T) {
	assert.Equal(t, 10, MergePayout(2, 1.0))
	assert.Equal(t, 15, MergePayout(2, 1.5))
	assert.Equal(t, 40, MergePayout(3, 2.0))
	assert.Equal(t, 22, MergePayout(3, 1.1), "payout floors")
}

func TestRollPercentBounds(t *testing.T) {
	assert.False(t, rollPercent(fixed(0.0), 0), "zero chance never succeeds")
	assert.False(t, rollPercent(fixed(0.0), -5))
	assert.True(t, rollPercent(fixed(0.999), 100), "full chance always succeeds")
	assert.True(t, rollPercent(fixed(0.499), 50))
	assert.False(t, rollPercent(fixed(0.5), 50))
}
