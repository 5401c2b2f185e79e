package session

import (
	"context"
	"fmt"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/logger"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// Purchase buys the next level of an upgrade. Unknown ids and category
// mismatches are input errors; maxed and unaffordable purchases are
// ordinary statuses with no state change, per the no-op failure policy.
// Board side effects (plot_expansion, fertile_soil) happen in the same
// locked transaction as the ledger increment.
func (s *Session) Purchase(ctx context.Context, category upgrade.Category, id string) (domain.PurchaseOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	def, ok := upgrade.Lookup(id)
	if !ok {
		return domain.PurchaseOutcome{}, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, id)
	}
	if def.Category != category {
		return domain.PurchaseOutcome{}, fmt.Errorf("%w: %s is in %s", domain.ErrCategoryMismatch, id, def.Category)
	}

	outcome := domain.PurchaseOutcome{
		ID:       id,
		Category: string(category),
		Level:    s.ledger.Level(id),
		Money:    s.money,
	}

	if s.upgradeMaxed(id) {
		outcome.Status = domain.PurchaseStatusMaxed
		return outcome, nil
	}

	cost := s.ledger.NextCost(id)
	if s.money < cost {
		outcome.Status = domain.PurchaseStatusUnaffordable
		outcome.NextCost = cost
		return outcome, nil
	}

	s.money -= cost
	level := s.ledger.Increment(id)
	log.Info("Upgrade purchased", "id", id, "level", level, "cost", cost)

	switch id {
	case upgrade.KeyPlotExpansion:
		if idx := s.board.UnlockRandomLockedCell(s.rng); idx >= 0 {
			outcome.UnlockedCell = &idx
			s.publish(ctx, event.CellUnlocked, event.CellChangedPayloadV1{CellIndex: idx})
		}
	case upgrade.KeyFertileSoil:
		if idx := s.board.FertilizeRandomCell(s.rng); idx >= 0 {
			outcome.FertileCell = &idx
			s.publish(ctx, event.CellFertilized, event.CellChangedPayloadV1{CellIndex: idx})
		}
	}

	s.publish(ctx, event.UpgradeBought, event.UpgradePurchasedPayloadV1{
		Category: string(category),
		ID:       id,
		Level:    level,
		Cost:     cost,
	})

	outcome.Status = domain.PurchaseStatusPurchased
	outcome.Level = level
	outcome.CoinsSpent = cost
	outcome.Money = s.money
	outcome.NextCost = s.ledger.NextCost(id)
	outcome.NextCostMaxed = s.upgradeMaxed(id)
	return outcome, nil
}

// upgradeMaxed reports whether an upgrade's purchase is blocked by a
// resource-exhaustion or discovery condition, independent of affordability.
func (s *Session) upgradeMaxed(id string) bool {
	switch id {
	case upgrade.KeyPlotExpansion:
		return s.board.LockedCount() == 0
	case upgrade.KeyFertileSoil:
		return s.board.FertilizableCount() == 0
	case upgrade.KeySeedQuality:
		// Blocks buying quality that would spawn seeds above anything the
		// player has ever merged up to.
		tier := upgrade.SeedBaseTier(s.ledger.Level(upgrade.KeySeedQuality))
		return tier+1 > s.highestLevel
	default:
		return false
	}
}

// UpgradeViews returns the shop projection for one category.
func (s *Session) UpgradeViews(category upgrade.Category) []domain.UpgradeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := upgrade.Keys(category)
	views := make([]domain.UpgradeView, 0, len(keys))
	for _, id := range keys {
		level := s.ledger.Level(id)
		cost := s.ledger.NextCost(id)
		views = append(views, domain.UpgradeView{
			ID:         id,
			Name:       upgrade.DisplayName(id),
			Category:   string(category),
			Level:      level,
			Value:      s.derivedValue(id, level),
			NextCost:   cost,
			Affordable: s.money >= cost,
			Maxed:      s.upgradeMaxed(id),
		})
	}
	return views
}

// derivedValue maps an upgrade to the effective parameter it controls, for
// display next to the level.
func (s *Session) derivedValue(id string, level int) float64 {
	switch id {
	case upgrade.KeySeedProduction:
		return upgrade.SeedRatePerMinute(level)
	case upgrade.KeyHarvestSpeed:
		return upgrade.HarvestRatePerMinute(level)
	case upgrade.KeySeedStorage:
		return float64(upgrade.StorageCapacity(level))
	case upgrade.KeySeedQuality:
		return float64(upgrade.SeedQualityChance(level))
	case upgrade.KeySeedSurplus:
		return float64(upgrade.SurplusValue(level))
	case upgrade.KeyBonusSeeds:
		return float64(upgrade.BonusSeedChance(level))
	case upgrade.KeyCropMerging:
		return upgrade.CropMergingMultiplier(level)
	case upgrade.KeyMergeHarvest:
		return float64(upgrade.MergeHarvestChance(level))
	case upgrade.KeyLuckyMerge:
		return float64(upgrade.LuckyMergeChance(level))
	case upgrade.KeyCropValue:
		return upgrade.CropValueMultiplier(level)
	case upgrade.KeyCropSynergy:
		return upgrade.CropSynergyMultiplier(level)
	case upgrade.KeyHarvestBoost:
		return float64(upgrade.HarvestBoostPercent(level))
	case upgrade.KeyLuckyHarvest:
		return float64(upgrade.LuckyHarvestChance(level))
	default:
		return float64(level)
	}
}
