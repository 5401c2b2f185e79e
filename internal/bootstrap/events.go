package bootstrap

import (
	"log/slog"

	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/eventlog"
	"github.com/hexplot/mergefarm/internal/metrics"
	"github.com/hexplot/mergefarm/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Journal  *eventlog.Journal
	SSEHub   *sse.Hub
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based gameplay metrics)
// - Event journal (recent-event history for the API)
// - SSE subscriber (forwards events to connected clients)
// Handlers run synchronously on publish and must not call back into the
// game session.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.Journal.Register(deps.EventBus)
	slog.Info(LogMsgEventJournalRegistered)

	sseSubscriber := sse.NewSubscriber(deps.SSEHub, deps.EventBus)
	sseSubscriber.Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)
}
