package session

import (
	"context"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/economy"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// TapHarvest handles one press of the harvest button: the tap advances the
// harvest meter and a completion pays out every occupied cell.
func (s *Session) TapHarvest(ctx context.Context) domain.HarvestOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := domain.HarvestOutcome{}
	for i := s.harvestMeter.Tap(); i > 0; i-- {
		payouts, total, lucky := s.performHarvest(ctx)
		outcome.Harvested = true
		outcome.Payouts = append(outcome.Payouts, payouts...)
		outcome.TotalCoins += total
		outcome.LuckySecondPass = outcome.LuckySecondPass || lucky
	}
	outcome.HarvestMeterPercent = s.harvestMeter.Percent()
	return outcome
}

// performHarvest resolves one harvest meter completion: every occupied
// cell pays floor(coinValue * cropValue * synergy * fertile), and the
// lucky-harvest roll may run a second full pass over the same crops.
func (s *Session) performHarvest(ctx context.Context) (payouts []domain.CellPayout, total int, lucky bool) {
	payouts, total = s.harvestPass()
	s.publish(ctx, event.HarvestDone, event.HarvestPerformedPayloadV1{
		Payouts:    payouts,
		TotalCoins: total,
		SecondPass: false,
	})
	s.earnCoins(ctx, total, event.CoinSourceHarvest, -1)

	if economy.RollLuckyHarvest(s.rng, upgrade.LuckyHarvestChance(s.ledger.Level(upgrade.KeyLuckyHarvest))) {
		lucky = true
		second, secondTotal := s.harvestPass()
		payouts = append(payouts, second...)
		total += secondTotal
		s.publish(ctx, event.HarvestDone, event.HarvestPerformedPayloadV1{
			Payouts:    second,
			TotalCoins: secondTotal,
			SecondPass: true,
		})
		s.earnCoins(ctx, secondTotal, event.CoinSourceHarvest, -1)
	}
	return payouts, total, lucky
}

// harvestPass computes the payout for every occupied cell without mutating
// the board; crops stay planted after a harvest.
func (s *Session) harvestPass() ([]domain.CellPayout, int) {
	cropValueMult := upgrade.CropValueMultiplier(s.ledger.Level(upgrade.KeyCropValue))
	synergyMult := upgrade.CropSynergyMultiplier(s.ledger.Level(upgrade.KeyCropSynergy))

	var payouts []domain.CellPayout
	total := 0
	for _, idx := range s.board.OccupiedIndices() {
		payout := s.cellPayout(idx, cropValueMult, synergyMult)
		payouts = append(payouts, payout)
		total += payout.Coins
	}
	return payouts, total
}

// cellPayout values a single occupied cell with the current multipliers.
func (s *Session) cellPayout(index int, cropValueMult, synergyMult float64) domain.CellPayout {
	cell := s.board.Cell(index)
	synergy := s.board.HasAdjacentSameLevel(index)
	coins := economy.HarvestCellValue(cell.Item.Level, cropValueMult, synergyMult, synergy, cell.Fertile)
	return domain.CellPayout{
		CellIndex: index,
		Level:     cell.Item.Level,
		Coins:     coins,
		Synergy:   synergy,
		Fertile:   cell.Fertile,
	}
}
