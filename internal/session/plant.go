package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/economy"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/logger"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// TapPlant handles one press of the plant button. With seeds in storage
// the tap fires a seed at a random empty cell; otherwise it advances the
// seed meter and resolves any completion.
func (s *Session) TapPlant(ctx context.Context) domain.PlantOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seedsInStorage > 0 {
		fired := s.fireSeed(ctx)
		outcome := domain.PlantOutcome{
			Disposition:      domain.SeedDispositionNone,
			SeedMeterPercent: s.seedMeter.Percent(),
			SeedsInStorage:   s.seedsInStorage,
		}
		if len(fired) > 0 {
			outcome.Disposition = domain.SeedDispositionFired
			outcome.FiredSeeds = fired
		}
		return outcome
	}

	outcome := domain.PlantOutcome{Disposition: domain.SeedDispositionNone}
	for i := s.seedMeter.Tap(); i > 0; i-- {
		outcome.Disposition, outcome.SurplusCoins = s.produceSeed(ctx)
	}
	outcome.SeedMeterPercent = s.seedMeter.Percent()
	outcome.SeedsInStorage = s.seedsInStorage
	return outcome
}

// produceSeed resolves one seed meter completion: the seed goes to storage
// if there is room, converts to surplus coins once that upgrade is owned,
// and is otherwise lost.
func (s *Session) produceSeed(ctx context.Context) (disposition string, surplusCoins int) {
	capacity := upgrade.StorageCapacity(s.ledger.Level(upgrade.KeySeedStorage))
	if s.seedsInStorage < capacity {
		s.seedsInStorage++
		s.publish(ctx, event.SeedProduced, event.SeedProducedPayloadV1{
			Disposition:    domain.SeedDispositionStored,
			SeedsInStorage: s.seedsInStorage,
		})
		return domain.SeedDispositionStored, 0
	}

	surplus := upgrade.SurplusValue(s.ledger.Level(upgrade.KeySeedSurplus))
	if surplus > 0 {
		s.publish(ctx, event.SeedProduced, event.SeedProducedPayloadV1{
			Disposition:    domain.SeedDispositionSurplus,
			SeedsInStorage: s.seedsInStorage,
			SurplusCoins:   surplus,
		})
		s.earnCoins(ctx, surplus, event.CoinSourceSurplus, -1)
		return domain.SeedDispositionSurplus, surplus
	}

	s.publish(ctx, event.SeedProduced, event.SeedProducedPayloadV1{
		Disposition:    domain.SeedDispositionWasted,
		SeedsInStorage: s.seedsInStorage,
	})
	return domain.SeedDispositionWasted, 0
}

// fireSeed plants one stored seed at a uniformly random empty unlocked
// cell and rolls the bonus-seed chance. A no-op (nil return) when the
// board has no empty cell; storage is left untouched in that case.
func (s *Session) fireSeed(ctx context.Context) []domain.FiredSeed {
	log := logger.FromContext(ctx)

	target := s.board.RandomEmptyCell(s.rng)
	if target < 0 {
		log.Debug("Seed fire skipped, board is full")
		return nil
	}
	s.seedsInStorage--

	qualityLevel := s.ledger.Level(upgrade.KeySeedQuality)
	baseTier := upgrade.SeedBaseTier(qualityLevel)
	chance := upgrade.SeedQualityChance(qualityLevel)

	fired := []domain.FiredSeed{s.landSeed(ctx, target, baseTier, chance, false)}

	if economy.RollBonusSeed(s.rng, upgrade.BonusSeedChance(s.ledger.Level(upgrade.KeyBonusSeeds))) {
		// The primary cell is occupied by now, so the bonus seed lands on a
		// different cell when one is empty; with none left it targets the
		// primary cell and is wasted there. The fired event still goes out
		// so the presentation layer animates the dud.
		bonusTarget := s.board.RandomEmptyCell(s.rng)
		if bonusTarget < 0 {
			bonusTarget = target
		}
		fired = append(fired, s.landSeed(ctx, bonusTarget, baseTier, chance, true))
	}
	return fired
}

// landSeed rolls the seed tier, places the crop, and emits seed.fired.
// Placement onto an occupied cell fails silently; the seed is wasted.
func (s *Session) landSeed(ctx context.Context, cellIndex, baseTier, qualityChance int, bonus bool) domain.FiredSeed {
	level := economy.RollSeedTier(s.rng, baseTier, qualityChance)
	placed := s.board.PlaceItem(cellIndex, domain.NewCrop(uuid.NewString(), level))
	if placed {
		s.discoverLevel(ctx, level)
	}
	seed := domain.FiredSeed{CellIndex: cellIndex, Level: level, Bonus: bonus, Wasted: !placed}
	s.publish(ctx, event.SeedFired, event.SeedFiredPayloadV1{
		CellIndex: cellIndex,
		Level:     level,
		Bonus:     bonus,
		Wasted:    !placed,
	})
	return seed
}
