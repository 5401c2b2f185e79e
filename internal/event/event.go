// Package event provides the in-process bus carrying domain events from
// the game session out to presentation-facing subscribers (SSE hub, event
// journal, metrics). Handlers never call back into the session.
package event

import (
	"context"
	"fmt"
	"sync"
)

// EventSchemaVersion is the current event schema version.
const EventSchemaVersion = "1.0"

// Type represents the type of an event.
type Type string

// Domain event types.
const (
	SeedProduced    Type = "seed.produced"
	SeedFired       Type = "seed.fired"
	CropMerged      Type = "crop.merged"
	CropRelocated   Type = "crop.relocated"
	CellUnlocked    Type = "cell.unlocked"
	CellFertilized  Type = "cell.fertilized"
	HarvestDone     Type = "harvest.performed"
	CoinsEarned     Type = "coins.earned"
	LevelDiscovered Type = "level.discovered"
	UpgradeBought   Type = "upgrade.purchased"
)

// AllTypes lists every domain event type; subscribers that want the full
// stream register against each entry.
var AllTypes = []Type{
	SeedProduced, SeedFired, CropMerged, CropRelocated, CellUnlocked,
	CellFertilized, HarvestDone, CoinsEarned, LevelDiscovered, UpgradeBought,
}

// Event represents a generic event in the system.
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// New wraps a payload in a versioned event envelope.
func New(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// Handler processes a published event.
type Handler func(ctx context.Context, event Event) error

// Bus publishes events to subscribers.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously, in
// subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("encountered %d errors while handling event %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for a specific event type.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers a handler for every domain event type.
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
