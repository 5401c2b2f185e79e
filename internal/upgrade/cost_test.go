package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostGeometricGrowth(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		level int
		want  int
	}{
		{"seed_production level 0", KeySeedProduction, 0, 75},
		{"seed_production level 1", KeySeedProduction, 1, 90},   // 75 * 1.18 = 88.5
		{"seed_production level 2", KeySeedProduction, 2, 105},  // 75 * 1.18^2 = 104.43
		{"seed_storage level 0", KeySeedStorage, 0, 40},
		{"crop_merging level 0", KeyCropMerging, 0, 200},
		{"crop_merging level 1", KeyCropMerging, 1, 240},
		{"crop_merging level 2", KeyCropMerging, 2, 290}, // 200 * 1.44 = 288
		{"harvest_speed level 0", KeyHarvestSpeed, 0, 90},
		{"lucky_merge level 0", KeyLuckyMerge, 0, 600},
		{"unknown id", "time_machine", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cost(tt.id, tt.level))
		})
	}
}

func TestCostAlwaysMultipleOf5(t *testing.T) {
	for id := range definitions {
		for level := 0; level < 40; level++ {
			assert.Zero(t, Cost(id, level)%5, "%s level %d", id, level)
		}
	}
}

func TestCostMonotonic(t *testing.T) {
	for id := range definitions {
		if id == KeySeedQuality {
			continue // stage-priced, flat within a stage
		}
		prev := Cost(id, 0)
		for level := 1; level < 40; level++ {
			cur := Cost(id, level)
			assert.GreaterOrEqual(t, cur, prev, "%s level %d", id, level)
			prev = cur
		}
	}
}

func TestSeedQualityStagePricing(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 150},
		{9, 150},
		{10, 600},
		{19, 600},
		{20, 2400},
		{30, 9600},
		{40, 38400},
		{50, 153600},
		{59, 153600},
		{120, 153600}, // past the table, clamps to the last stage
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Cost(KeySeedQuality, tt.level), "level %d", tt.level)
	}
}

func TestLedger(t *testing.T) {
	l := NewLedger()

	assert.Zero(t, l.Level(KeyCropValue))
	assert.Equal(t, 250, l.NextCost(KeyCropValue))

	assert.Equal(t, 1, l.Increment(KeyCropValue))
	assert.Equal(t, 2, l.Increment(KeyCropValue))
	assert.Equal(t, 2, l.Level(KeyCropValue))
	assert.Equal(t, Cost(KeyCropValue, 2), l.NextCost(KeyCropValue))

	// Unknown ids are inert.
	assert.Zero(t, l.Level("time_machine"))
	assert.Zero(t, l.Increment("time_machine"))
	assert.Zero(t, l.NextCost("time_machine"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Seed Quality", DisplayName(KeySeedQuality))
	assert.Equal(t, "Plot Expansion", DisplayName(KeyPlotExpansion))
	assert.Equal(t, "Lucky Harvest", DisplayName(KeyLuckyHarvest))
}

func TestCatalogueConsistency(t *testing.T) {
	// Every definition appears in exactly one category's display order.
	seen := make(map[string]bool)
	for _, cat := range Categories {
		for _, id := range Keys(cat) {
			assert.False(t, seen[id], "%s listed twice", id)
			seen[id] = true

			def, ok := Lookup(id)
			assert.True(t, ok, "%s missing definition", id)
			assert.Equal(t, cat, def.Category)
		}
	}
	assert.Len(t, seen, len(definitions))
}
