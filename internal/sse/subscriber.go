package sse

import (
	"context"
	"log/slog"

	"github.com/hexplot/mergefarm/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers a forwarding handler for every domain event type.
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.forward)
	slog.Info("SSE subscriber registered for all domain event types",
		"type_count", len(event.AllTypes))
}

// forward re-broadcasts a domain event to connected SSE clients.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
