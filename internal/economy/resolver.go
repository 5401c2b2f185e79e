// Package economy holds the probabilistic and arithmetic rules that turn
// domain events into coin amounts and seed levels. Every function is pure
// given the ledger-derived parameters and the injected random source, so
// tests drive exact outcomes with fixed sequences.
package economy

import "math"

// Rand is the random source every roll draws from. *math/rand.Rand
// satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// rollPercent draws uniformly from [0, 100) and succeeds when the draw is
// under the chance. All rolls are independent; there are no pity timers.
func rollPercent(rng Rand, chancePct int) bool {
	if chancePct <= 0 {
		return false
	}
	return rng.Float64()*100 < float64(chancePct)
}

// CoinValue is the base coin worth of a crop: 5 at level 1, doubling per
// level.
func CoinValue(level int) int {
	if level < 1 {
		return 0
	}
	return 5 << (level - 1)
}

// RollSeedTier resolves the level of a spawning seed: the base tier, or
// one above it with the current quality chance.
func RollSeedTier(rng Rand, baseTier, qualityChancePct int) int {
	if rollPercent(rng, qualityChancePct) {
		return baseTier + 1
	}
	return baseTier
}

// RollBonusSeed reports whether a fired seed brings a second seed.
func RollBonusSeed(rng Rand, chancePct int) bool {
	return rollPercent(rng, chancePct)
}

// RollLevelIncrease resolves how many levels a merge advances: normally 1,
// or 2 on a lucky roll. The discovery guard takes precedence over the
// roll: a +2 result may never skip past highestLevelEver+1, so crops at
// the frontier always merge +1.
func RollLevelIncrease(rng Rand, luckyChancePct, cropLevel, highestLevelEver int) int {
	if cropLevel+2 > highestLevelEver+1 {
		return 1
	}
	if rollPercent(rng, luckyChancePct) {
		return 2
	}
	return 1
}

// RollLuckyHarvest reports whether a harvest runs a second full pass.
func RollLuckyHarvest(rng Rand, chancePct int) bool {
	return rollPercent(rng, chancePct)
}

// RollMergeHarvest reports whether one adjacent cell pays out its harvest
// value as a merge side effect. Rolled independently per neighbor.
func RollMergeHarvest(rng Rand, chancePct int) bool {
	return rollPercent(rng, chancePct)
}

// HarvestCellValue computes the coin payout for one occupied cell:
// floor(coinValue * cropValue * synergy * fertile). The synergy multiplier
// applies only when a neighbor holds a same-level crop; fertile cells
// always double.
func HarvestCellValue(level int, cropValueMult, synergyMult float64, synergy, fertile bool) int {
	value := float64(CoinValue(level)) * cropValueMult
	if synergy {
		value *= synergyMult
	}
	if fertile {
		value *= 2
	}
	return int(math.Floor(value))
}

// MergePayout computes the immediate coin reward for a successful merge.
func MergePayout(resultLevel int, cropMergingMult float64) int {
	return int(math.Floor(float64(CoinValue(resultLevel)) * cropMergingMult))
}
