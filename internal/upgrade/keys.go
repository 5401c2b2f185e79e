// Package upgrade tracks per-category upgrade levels and derives every
// effective game parameter (rates, chances, multipliers) and purchase price
// from them. All derivations are pure functions of the current level.
package upgrade

// Category groups upgrades into three independent ledgers.
type Category string

const (
	CategorySeeds   Category = "seeds"
	CategoryCrops   Category = "crops"
	CategoryHarvest Category = "harvest"
)

// Categories lists every ledger category in display order.
var Categories = []Category{CategorySeeds, CategoryCrops, CategoryHarvest}

// Upgrade ids. The set is fixed; levels start at 0.
const (
	// Seeds category
	KeySeedProduction = "seed_production"
	KeySeedStorage    = "seed_storage"
	KeySeedQuality    = "seed_quality"
	KeySeedSurplus    = "seed_surplus"
	KeyBonusSeeds     = "bonus_seeds"
	KeyPlotExpansion  = "plot_expansion"

	// Crops category
	KeyCropMerging  = "crop_merging"
	KeyMergeHarvest = "merge_harvest"
	KeyLuckyMerge   = "lucky_merge"
	KeyFertileSoil  = "fertile_soil"

	// Harvest category
	KeyHarvestSpeed = "harvest_speed"
	KeyCropValue    = "crop_value"
	KeyCropSynergy  = "crop_synergy"
	KeyHarvestBoost = "harvest_boost"
	KeyLuckyHarvest = "lucky_harvest"
)

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySeeds, CategoryCrops, CategoryHarvest:
		return true
	default:
		return false
	}
}
