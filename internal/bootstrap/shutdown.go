package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hexplot/mergefarm/internal/scheduler"
	"github.com/hexplot/mergefarm/internal/server"
	"github.com/hexplot/mergefarm/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	SSEHub    *sse.Hub
}

// GracefulShutdown stops all application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Tick scheduler (stop advancing meters)
// 3. SSE hub (disconnect streaming clients)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
