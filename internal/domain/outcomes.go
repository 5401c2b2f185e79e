package domain

// Seed dispositions for PlantOutcome.
const (
	SeedDispositionStored  = "stored"  // meter completed, seed added to storage
	SeedDispositionSurplus = "surplus" // storage full, seed converted to coins
	SeedDispositionWasted  = "wasted"  // storage full and surplus not yet purchased
	SeedDispositionFired   = "fired"   // stored seed planted onto the board
	SeedDispositionNone    = "none"    // tap only advanced the meter
)

// FiredSeed describes one seed landing on the board.
type FiredSeed struct {
	CellIndex int  `json:"cell_index"`
	Level     int  `json:"level"`
	Bonus     bool `json:"bonus"`
	Wasted    bool `json:"wasted"` // bonus seed aimed at an occupied cell
}

// PlantOutcome reports what a plant tap did.
type PlantOutcome struct {
	Disposition      string      `json:"disposition"`
	SeedMeterPercent float64     `json:"seed_meter_percent"`
	SeedsInStorage   int         `json:"seeds_in_storage"`
	SurplusCoins     int         `json:"surplus_coins,omitempty"`
	FiredSeeds       []FiredSeed `json:"fired_seeds,omitempty"`
}

// CellPayout is the harvest value collected from one occupied cell.
type CellPayout struct {
	CellIndex int  `json:"cell_index"`
	Level     int  `json:"level"`
	Coins     int  `json:"coins"`
	Synergy   bool `json:"synergy"`
	Fertile   bool `json:"fertile"`
}

// HarvestOutcome reports what a harvest tap did.
type HarvestOutcome struct {
	Harvested           bool         `json:"harvested"`
	HarvestMeterPercent float64      `json:"harvest_meter_percent"`
	Payouts             []CellPayout `json:"payouts,omitempty"`
	TotalCoins          int          `json:"total_coins"`
	LuckySecondPass     bool         `json:"lucky_second_pass"`
}

// Merge outcome kinds.
const (
	MergeKindMerged    = "merged"
	MergeKindRelocated = "relocated"
	MergeKindNoop      = "noop"
)

// MergeOutcome reports the resolution of a drag-release on the board.
type MergeOutcome struct {
	Kind             string       `json:"kind"`
	SourceIndex      int          `json:"source_index"`
	TargetIndex      int          `json:"target_index"`
	ResultLevel      int          `json:"result_level,omitempty"`
	Lucky            bool         `json:"lucky,omitempty"`
	Coins            int          `json:"coins,omitempty"`
	NewHighestLevel  bool         `json:"new_highest_level,omitempty"`
	SidePayouts      []CellPayout `json:"side_payouts,omitempty"`
	HarvestBoosted   float64      `json:"harvest_boosted,omitempty"`
	SideHarvestCoins int          `json:"side_harvest_coins,omitempty"`
}

// Purchase outcome statuses.
const (
	PurchaseStatusPurchased    = "purchased"
	PurchaseStatusMaxed        = "maxed"
	PurchaseStatusUnaffordable = "unaffordable"
)

// PurchaseOutcome reports the resolution of an upgrade purchase.
type PurchaseOutcome struct {
	Status        string `json:"status"`
	ID            string `json:"id"`
	Category      string `json:"category"`
	Level         int    `json:"level"`
	CoinsSpent    int    `json:"coins_spent,omitempty"`
	Money         int    `json:"money"`
	UnlockedCell  *int   `json:"unlocked_cell,omitempty"`
	FertileCell   *int   `json:"fertile_cell,omitempty"`
	NextCost      int    `json:"next_cost,omitempty"`
	NextCostMaxed bool   `json:"next_cost_maxed,omitempty"`
}
