package domain

// CellView is the read-only projection of a single board cell exposed to
// the presentation layer.
type CellView struct {
	Index   int   `json:"index"`
	Q       int   `json:"q"`
	R       int   `json:"r"`
	Item    *Crop `json:"item,omitempty"`
	Locked  bool  `json:"locked"`
	Fertile bool  `json:"fertile"`
}

// SessionSnapshot is the full queryable state of a game session.
// Meter percentages are smooth floats so the presentation layer can
// interpolate ring animations between ticks.
type SessionSnapshot struct {
	Money                 int        `json:"money"`
	SeedsInStorage        int        `json:"seeds_in_storage"`
	SeedStorageCapacity   int        `json:"seed_storage_capacity"`
	HighestPlantLevelEver int        `json:"highest_plant_level_ever"`
	SeedMeterPercent      float64    `json:"seed_meter_percent"`
	HarvestMeterPercent   float64    `json:"harvest_meter_percent"`
	Board                 []CellView `json:"board"`
}

// UpgradeView is the per-upgrade projection the presentation layer uses to
// render the shop: current level, the derived effective value, the next
// purchase price, and whether the purchase button should be enabled.
type UpgradeView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Level      int     `json:"level"`
	Value      float64 `json:"value"`
	NextCost   int     `json:"next_cost"`
	Affordable bool    `json:"affordable"`
	Maxed      bool    `json:"maxed"`
}
