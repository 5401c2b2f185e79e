package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hexplot/mergefarm/internal/bootstrap"
	"github.com/hexplot/mergefarm/internal/config"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/eventlog"
	"github.com/hexplot/mergefarm/internal/scheduler"
	"github.com/hexplot/mergefarm/internal/server"
	"github.com/hexplot/mergefarm/internal/session"
	"github.com/hexplot/mergefarm/internal/sse"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting mergefarm",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port,
		"tick_interval_ms", cfg.TickIntervalMS)

	// Seed the game's random source. A fixed RNG_SEED gives a
	// deterministic, replayable session.
	seed := cfg.RNGSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		slog.Info("Using fixed RNG seed", "seed", seed)
	}
	rng := rand.New(rand.NewSource(seed))

	// Event plumbing
	eventBus := event.NewMemoryBus()

	journal, err := eventlog.NewJournal(cfg.EventJournalSize)
	if err != nil {
		slog.Error("Failed to create event journal", "error", err)
		os.Exit(1)
	}

	sseHub := sse.NewHub()
	sseHub.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		Journal:  journal,
		SSEHub:   sseHub,
	})

	// Game session and tick loop
	game := session.New(eventBus, rng)

	ticker := scheduler.New()
	ticker.Schedule(time.Duration(cfg.TickIntervalMS)*time.Millisecond, game.Advance)

	srv := server.NewServer(cfg.Port, game, journal, sseHub)

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: ticker,
		SSEHub:    sseHub,
	})
}
