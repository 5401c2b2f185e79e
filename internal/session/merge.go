package session

import (
	"context"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/economy"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// AttemptMerge resolves a drag-release from source onto target. The
// presentation layer pre-filters legal drop targets, but the session is
// the final authority and tolerates illegal requests as no-ops.
func (s *Session) AttemptMerge(ctx context.Context, sourceIndex, targetIndex int) domain.MergeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := domain.MergeOutcome{
		Kind:        domain.MergeKindNoop,
		SourceIndex: sourceIndex,
		TargetIndex: targetIndex,
	}

	source := s.board.Cell(sourceIndex)
	target := s.board.Cell(targetIndex)
	if source == nil || target == nil || source.Item == nil {
		return outcome
	}

	// The lucky-merge roll happens exactly once per merge attempt, before
	// the board mutation, so the animation and the result cannot diverge.
	levelIncrease := 1
	if target.Item != nil && target.Item.Level == source.Item.Level {
		levelIncrease = economy.RollLevelIncrease(
			s.rng,
			upgrade.LuckyMergeChance(s.ledger.Level(upgrade.KeyLuckyMerge)),
			source.Item.Level,
			s.highestLevel,
		)
	}

	result := s.board.AttemptMerge(sourceIndex, targetIndex, levelIncrease)
	switch result.Kind {
	case domain.MergeKindRelocated:
		outcome.Kind = domain.MergeKindRelocated
		s.publish(ctx, event.CropRelocated, event.CropRelocatedPayloadV1{
			SourceIndex: sourceIndex,
			TargetIndex: targetIndex,
		})
	case domain.MergeKindMerged:
		s.resolveMerge(ctx, &outcome, targetIndex, result.ResultLevel, levelIncrease == 2)
	}
	return outcome
}

// resolveMerge applies the rewards of a successful merge: record tracking,
// the immediate coin payout, the harvest meter boost, and the
// merge-harvest side rolls over the target's neighbors.
func (s *Session) resolveMerge(ctx context.Context, outcome *domain.MergeOutcome, targetIndex, resultLevel int, lucky bool) {
	outcome.Kind = domain.MergeKindMerged
	outcome.ResultLevel = resultLevel
	outcome.Lucky = lucky

	outcome.NewHighestLevel = s.discoverLevel(ctx, resultLevel)

	coins := economy.MergePayout(resultLevel, upgrade.CropMergingMultiplier(s.ledger.Level(upgrade.KeyCropMerging)))
	outcome.Coins = coins
	s.publish(ctx, event.CropMerged, event.CropMergedPayloadV1{
		SourceIndex: outcome.SourceIndex,
		TargetIndex: targetIndex,
		ResultLevel: resultLevel,
		Lucky:       lucky,
		Coins:       coins,
	})
	s.earnCoins(ctx, coins, event.CoinSourceMerge, targetIndex)

	if boost := upgrade.HarvestBoostPercent(s.ledger.Level(upgrade.KeyHarvestBoost)); boost > 0 {
		s.harvestMeter.Boost(float64(boost))
		outcome.HarvestBoosted = float64(boost)
	}

	s.rollMergeHarvest(ctx, outcome, targetIndex)
}

// rollMergeHarvest rolls the merge-harvest chance independently for every
// occupied neighbor of the merge target. Hits pay the neighbor's harvest
// value without removing the crop or touching the harvest meter.
func (s *Session) rollMergeHarvest(ctx context.Context, outcome *domain.MergeOutcome, targetIndex int) {
	chance := upgrade.MergeHarvestChance(s.ledger.Level(upgrade.KeyMergeHarvest))
	if chance <= 0 {
		return
	}
	cropValueMult := upgrade.CropValueMultiplier(s.ledger.Level(upgrade.KeyCropValue))
	synergyMult := upgrade.CropSynergyMultiplier(s.ledger.Level(upgrade.KeyCropSynergy))

	for _, n := range s.board.AdjacentIndices(targetIndex) {
		if s.board.Cell(n).Item == nil {
			continue
		}
		if !economy.RollMergeHarvest(s.rng, chance) {
			continue
		}
		payout := s.cellPayout(n, cropValueMult, synergyMult)
		outcome.SidePayouts = append(outcome.SidePayouts, payout)
		outcome.SideHarvestCoins += payout.Coins
		s.earnCoins(ctx, payout.Coins, event.CoinSourceMergeHarvest, n)
	}
}
