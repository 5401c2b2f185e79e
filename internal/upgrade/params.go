package upgrade

import "github.com/hexplot/mergefarm/internal/utils"

// Formula constants. Chances are percentages; rates are events per minute.
const (
	baseRatePerMinute = 3 // meter rate floor at level 0

	chancePerLevel       = 5  // percent per level for all 5%-per-level rolls
	chanceCap            = 50 // hard cap for those rolls
	boostPerLevel        = 2  // harvest meter percent added per merge, per level
	boostCap             = 20 // harvest_boost hard cap
	multiplierPerLevel   = 0.1
	cropMergingMultCap   = 2.0
	qualityChanceStep    = 10 // percent per level within a stage
	seedQualityStageSpan = 10 // levels per seed tier stage
)

// SeedRatePerMinute is the seed meter's auto-fill rate.
func SeedRatePerMinute(level int) float64 {
	return float64(baseRatePerMinute + level)
}

// HarvestRatePerMinute is the harvest meter's auto-fill rate.
func HarvestRatePerMinute(level int) float64 {
	return float64(baseRatePerMinute + level)
}

// StorageCapacity is the seed storage size.
func StorageCapacity(level int) int {
	return 1 + level
}

// SeedBaseTier is the crop level normally produced by planting. It steps
// up permanently every time seed_quality crosses a multiple of 10.
func SeedBaseTier(seedQualityLevel int) int {
	return 1 + seedQualityLevel/seedQualityStageSpan
}

// SeedQualityChance is the percent chance to spawn one tier above the base
// tier. It resets to 0 each time the base tier steps up.
func SeedQualityChance(seedQualityLevel int) int {
	return (seedQualityLevel % seedQualityStageSpan) * qualityChanceStep
}

// BonusSeedChance is the percent chance a fired seed brings a second seed.
func BonusSeedChance(level int) int {
	return utils.ClampInt(level*chancePerLevel, 0, chanceCap)
}

// SurplusValue is the coin credit for a produced seed that finds storage
// full. Zero until the upgrade is bought, then doubles per level.
func SurplusValue(level int) int {
	if level <= 0 {
		return 0
	}
	return 10 << (level - 1)
}

// CropMergingMultiplier scales the coin payout on every merge.
func CropMergingMultiplier(level int) float64 {
	return utils.ClampFloat(1.0+multiplierPerLevel*float64(level), 1.0, cropMergingMultCap)
}

// LuckyMergeChance is the percent chance a merge advances two levels.
func LuckyMergeChance(level int) int {
	return utils.ClampInt(level*chancePerLevel, 0, chanceCap)
}

// MergeHarvestChance is the per-adjacent-cell percent chance a merge also
// pays out that neighbor's harvest value.
func MergeHarvestChance(level int) int {
	return utils.ClampInt(level*chancePerLevel, 0, chanceCap)
}

// CropValueMultiplier scales harvest payouts.
func CropValueMultiplier(level int) float64 {
	return 1.0 + multiplierPerLevel*float64(level)
}

// CropSynergyMultiplier scales a cell's harvest payout when a neighbor
// holds a same-level crop.
func CropSynergyMultiplier(level int) float64 {
	return 1.0 + multiplierPerLevel*float64(level)
}

// HarvestBoostPercent is the harvest meter advance granted per merge.
func HarvestBoostPercent(level int) int {
	return utils.ClampInt(level*boostPerLevel, 0, boostCap)
}

// LuckyHarvestChance is the percent chance a harvest runs a second pass.
func LuckyHarvestChance(level int) int {
	return utils.ClampInt(level*chancePerLevel, 0, chanceCap)
}
