package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.True(t, cfg.SolverEnabled)
	assert.Equal(t, 5*time.Second, cfg.SolverTimeout)
	assert.Equal(t, 15*time.Minute, cfg.SlotIncrement)
	assert.Equal(t, time.Minute, cfg.PendingCheckInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SOLVER_ENABLED", "false")
	t.Setenv("SOLVER_TIMEOUT", "2s")
	t.Setenv("SLOT_INCREMENT", "30m")
	t.Setenv("PENDING_CHECK_INTERVAL", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.False(t, cfg.SolverEnabled)
	assert.Equal(t, 2*time.Second, cfg.SolverTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SlotIncrement)
	assert.Equal(t, 10*time.Second, cfg.PendingCheckInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unparseable bool", func(t *testing.T) {
		t.Setenv("SOLVER_ENABLED", "maybe")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SOLVER_ENABLED")
	})

	t.Run("unparseable duration", func(t *testing.T) {
		t.Setenv("SOLVER_TIMEOUT", "five seconds")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SOLVER_TIMEOUT")
	})

	t.Run("non-positive increment", func(t *testing.T) {
		t.Setenv("SLOT_INCREMENT", "0s")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLOT_INCREMENT")
	})
}
