// Package config loads the application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// RNGSeed seeds the game session's random source. Zero means seed
	// from entropy; a fixed value gives a deterministic, replayable run.
	RNGSeed int64

	// TickIntervalMS is the meter-advancement cadence in milliseconds.
	TickIntervalMS int

	// EventJournalSize bounds the recent-event journal.
	EventJournalSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "mergefarm"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	seed, err := getEnvInt("RNG_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.RNGSeed = int64(seed)

	tick, err := getEnvInt("TICK_INTERVAL_MS", 50)
	if err != nil {
		return nil, err
	}
	if tick <= 0 {
		return nil, fmt.Errorf("TICK_INTERVAL_MS must be positive, got %d", tick)
	}
	cfg.TickIntervalMS = tick

	journal, err := getEnvInt("EVENT_JOURNAL_SIZE", 256)
	if err != nil {
		return nil, err
	}
	if journal <= 0 {
		return nil, fmt.Errorf("EVENT_JOURNAL_SIZE must be positive, got %d", journal)
	}
	cfg.EventJournalSize = journal

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
