package upgrade

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Definition is the static pricing data for one upgrade id.
type Definition struct {
	ID       string
	Category Category
	BaseCost int
	Growth   float64
}

// definitions is the fixed upgrade catalogue. seed_quality has no
// base/growth pair; it uses stage pricing (see Cost).
var definitions = map[string]Definition{
	KeySeedProduction: {ID: KeySeedProduction, Category: CategorySeeds, BaseCost: 75, Growth: 1.18},
	KeySeedStorage:    {ID: KeySeedStorage, Category: CategorySeeds, BaseCost: 40, Growth: 1.16},
	KeySeedQuality:    {ID: KeySeedQuality, Category: CategorySeeds},
	KeySeedSurplus:    {ID: KeySeedSurplus, Category: CategorySeeds, BaseCost: 120, Growth: 1.22},
	KeyBonusSeeds:     {ID: KeyBonusSeeds, Category: CategorySeeds, BaseCost: 300, Growth: 1.28},
	KeyPlotExpansion:  {ID: KeyPlotExpansion, Category: CategorySeeds, BaseCost: 150, Growth: 1.35},

	KeyCropMerging:  {ID: KeyCropMerging, Category: CategoryCrops, BaseCost: 200, Growth: 1.20},
	KeyMergeHarvest: {ID: KeyMergeHarvest, Category: CategoryCrops, BaseCost: 350, Growth: 1.27},
	KeyLuckyMerge:   {ID: KeyLuckyMerge, Category: CategoryCrops, BaseCost: 600, Growth: 1.30},
	KeyFertileSoil:  {ID: KeyFertileSoil, Category: CategoryCrops, BaseCost: 500, Growth: 1.33},

	KeyHarvestSpeed: {ID: KeyHarvestSpeed, Category: CategoryHarvest, BaseCost: 90, Growth: 1.18},
	KeyCropValue:    {ID: KeyCropValue, Category: CategoryHarvest, BaseCost: 250, Growth: 1.23},
	KeyCropSynergy:  {ID: KeyCropSynergy, Category: CategoryHarvest, BaseCost: 300, Growth: 1.24},
	KeyHarvestBoost: {ID: KeyHarvestBoost, Category: CategoryHarvest, BaseCost: 180, Growth: 1.22},
	KeyLuckyHarvest: {ID: KeyLuckyHarvest, Category: CategoryHarvest, BaseCost: 450, Growth: 1.27},
}

// categoryKeys holds display ordering per category.
var categoryKeys = map[Category][]string{
	CategorySeeds:   {KeySeedProduction, KeySeedStorage, KeySeedQuality, KeySeedSurplus, KeyBonusSeeds, KeyPlotExpansion},
	CategoryCrops:   {KeyCropMerging, KeyMergeHarvest, KeyLuckyMerge, KeyFertileSoil},
	CategoryHarvest: {KeyHarvestSpeed, KeyCropValue, KeyCropSynergy, KeyHarvestBoost, KeyLuckyHarvest},
}

// Lookup returns the definition for an upgrade id.
func Lookup(id string) (Definition, bool) {
	def, ok := definitions[id]
	return def, ok
}

// Keys returns the upgrade ids belonging to a category, in display order.
func Keys(category Category) []string {
	return categoryKeys[category]
}

var titleCaser = cases.Title(language.English)

// DisplayName renders an upgrade id as a human-readable name,
// e.g. "seed_quality" becomes "Seed Quality".
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}
