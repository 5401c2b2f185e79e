package event

import "github.com/hexplot/mergefarm/internal/domain"

// Typed event payloads for type safety.

// SeedProducedPayloadV1 fires when the seed meter completes.
type SeedProducedPayloadV1 struct {
	Disposition    string `json:"disposition"` // stored, surplus, or wasted
	SeedsInStorage int    `json:"seeds_in_storage"`
	SurplusCoins   int    `json:"surplus_coins,omitempty"`
}

// SeedFiredPayloadV1 fires when a stored seed lands on the board.
type SeedFiredPayloadV1 struct {
	CellIndex int  `json:"cell_index"`
	Level     int  `json:"level"`
	Bonus     bool `json:"bonus"`
	Wasted    bool `json:"wasted"`
}

// CropMergedPayloadV1 fires on every successful merge.
type CropMergedPayloadV1 struct {
	SourceIndex int  `json:"source_index"`
	TargetIndex int  `json:"target_index"`
	ResultLevel int  `json:"result_level"`
	Lucky       bool `json:"lucky"`
	Coins       int  `json:"coins"`
}

// CropRelocatedPayloadV1 fires when a drag moves a crop to an empty cell.
type CropRelocatedPayloadV1 struct {
	SourceIndex int `json:"source_index"`
	TargetIndex int `json:"target_index"`
}

// CellChangedPayloadV1 fires for cell unlocks and fertilizations.
type CellChangedPayloadV1 struct {
	CellIndex int `json:"cell_index"`
}

// HarvestPerformedPayloadV1 fires when the harvest meter completes.
type HarvestPerformedPayloadV1 struct {
	Payouts    []domain.CellPayout `json:"payouts"`
	TotalCoins int                 `json:"total_coins"`
	SecondPass bool                `json:"second_pass"`
}

// Coin sources for CoinsEarnedPayloadV1.
const (
	CoinSourceHarvest      = "harvest"
	CoinSourceMerge        = "merge"
	CoinSourceMergeHarvest = "merge_harvest"
	CoinSourceSurplus      = "seed_surplus"
)

// CoinsEarnedPayloadV1 fires whenever money increases.
type CoinsEarnedPayloadV1 struct {
	Amount    int    `json:"amount"`
	Source    string `json:"source"`
	CellIndex int    `json:"cell_index,omitempty"`
}

// LevelDiscoveredPayloadV1 fires when highestPlantLevelEver increases.
type LevelDiscoveredPayloadV1 struct {
	Level int `json:"level"`
}

// UpgradePurchasedPayloadV1 fires on every successful purchase.
type UpgradePurchasedPayloadV1 struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Level    int    `json:"level"`
	Cost     int    `json:"cost"`
}
