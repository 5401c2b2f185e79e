package metrics

import (
	"context"
	"strconv"

	"github.com/hexplot/mergefarm/internal/event"
)

// EventMetricsCollector subscribes to domain events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all domain event types
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics. Payloads are the typed
// v1 structs published by the session.
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.SeedProducedPayloadV1:
		SeedsProduced.WithLabelValues(payload.Disposition).Inc()
	case event.SeedFiredPayloadV1:
		SeedsFired.Inc()
		if !payload.Wasted {
			BoardOccupancy.Inc()
		}
	case event.CropMergedPayloadV1:
		CropsMerged.WithLabelValues(strconv.FormatBool(payload.Lucky)).Inc()
		// A merge consumes the source crop.
		BoardOccupancy.Dec()
	case event.HarvestPerformedPayloadV1:
		Harvests.Inc()
	case event.CoinsEarnedPayloadV1:
		CoinsEarned.WithLabelValues(payload.Source).Add(float64(payload.Amount))
		Money.Add(float64(payload.Amount))
	case event.UpgradePurchasedPayloadV1:
		UpgradesPurchased.WithLabelValues(payload.Category, payload.ID).Inc()
		Money.Sub(float64(payload.Cost))
	case event.CellChangedPayloadV1:
		switch evt.Type {
		case event.CellUnlocked:
			CellsUnlocked.Inc()
		case event.CellFertilized:
			CellsFertilized.Inc()
		}
	case event.LevelDiscoveredPayloadV1:
		HighestLevel.Set(float64(payload.Level))
	}
	return nil
}
