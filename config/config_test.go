package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Defaults(), cfg)
		require.NoError(t, cfg.Validate(), "Defaults should be valid")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "budget: 40ms\nhorizon: 6\nseed: 42\nseed_window: per_rollout\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 40*time.Millisecond, cfg.Budget)
		require.Equal(t, 6, cfg.Horizon)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, "per_rollout", cfg.SeedWindow)
		require.Equal(t, DefaultGoroutines, cfg.Goroutines, "Unset keys keep their default")
		require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "horizon: [1, 2\n"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rollouts without budget", func(t *testing.T) {
		cfg := Defaults()
		cfg.Budget = 0
		cfg.Rollouts = 500
		require.NoError(t, cfg.Validate())
	})

	invalid := map[string]func(*Config){
		"non-positive horizon":   func(c *Config) { c.Horizon = 0 },
		"negative goroutines":    func(c *Config) { c.Goroutines = -2 },
		"negative rollouts":      func(c *Config) { c.Rollouts = -1 },
		"no budget nor rollouts": func(c *Config) { c.Budget = 0 },
		"unknown seed window":    func(c *Config) { c.SeedWindow = "per_day" },
		"unknown log level":      func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "debug"
	require.Equal(t, zerolog.DebugLevel, cfg.Level())

	cfg.LogLevel = "loud"
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}
