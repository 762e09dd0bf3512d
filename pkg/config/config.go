// Package config loads application settings from environment variables.
// Database settings live in pkg/database and are loaded separately.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the scheduler's runtime settings.
type Config struct {
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string

	// SolverEnabled toggles feasibility checking at startup. When disabled,
	// scheduling requests are accepted without constraint checks and
	// planning queries are refused.
	SolverEnabled bool

	// SolverTimeout bounds a single feasibility check.
	SolverTimeout time.Duration

	// SlotIncrement is the grid step for availability searches.
	SlotIncrement time.Duration

	// PendingCheckInterval is the period of the background sweep that flags
	// meetings still unresolved past their start time.
	PendingCheckInterval time.Duration
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:             getEnvOrDefault("HTTP_ADDR", ":8080"),
		SolverEnabled:        true,
		SolverTimeout:        5 * time.Second,
		SlotIncrement:        15 * time.Minute,
		PendingCheckInterval: time.Minute,
	}

	if v := os.Getenv("SOLVER_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SOLVER_ENABLED %q: %w", v, err)
		}
		cfg.SolverEnabled = enabled
	}

	var err error
	if cfg.SolverTimeout, err = durationEnv("SOLVER_TIMEOUT", cfg.SolverTimeout); err != nil {
		return nil, err
	}
	if cfg.SlotIncrement, err = durationEnv("SLOT_INCREMENT", cfg.SlotIncrement); err != nil {
		return nil, err
	}
	if cfg.PendingCheckInterval, err = durationEnv("PENDING_CHECK_INTERVAL", cfg.PendingCheckInterval); err != nil {
		return nil, err
	}

	if cfg.SolverTimeout <= 0 {
		return nil, fmt.Errorf("SOLVER_TIMEOUT must be positive, got %s", cfg.SolverTimeout)
	}
	if cfg.SlotIncrement <= 0 {
		return nil, fmt.Errorf("SLOT_INCREMENT must be positive, got %s", cfg.SlotIncrement)
	}
	if cfg.PendingCheckInterval <= 0 {
		return nil, fmt.Errorf("PENDING_CHECK_INTERVAL must be positive, got %s", cfg.PendingCheckInterval)
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
