package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBudget     = 95 * time.Millisecond // Per turn thinking time
	DefaultHorizon    = 10                    // Days simulated past the current one
	DefaultGoroutines = 1
	DefaultSeedWindow = "per_ply"
	DefaultLogLevel   = "info"
)

// Config holds the bot settings. Zero values in a file fall back to defaults.
type Config struct {
	Budget     time.Duration `yaml:"budget"`
	Horizon    int           `yaml:"horizon"`
	Goroutines int           `yaml:"goroutines"`
	Rollouts   int           `yaml:"rollouts"`    // Fixed rollouts per turn, 0 for time boxed
	Seed       uint64        `yaml:"seed"`        // 0 for a time derived seed
	SeedWindow string        `yaml:"seed_window"` // per_ply | per_rollout
	LogLevel   string        `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		Budget:     DefaultBudget,
		Horizon:    DefaultHorizon,
		Goroutines: DefaultGoroutines,
		SeedWindow: DefaultSeedWindow,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.Budget != 0 {
		c.Budget = o.Budget
	}
	if o.Horizon != 0 {
		c.Horizon = o.Horizon
	}
	if o.Goroutines != 0 {
		c.Goroutines = o.Goroutines
	}
	if o.Rollouts != 0 {
		c.Rollouts = o.Rollouts
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.SeedWindow != "" {
		c.SeedWindow = o.SeedWindow
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Horizon <= 0 {
		errs = append(errs, fmt.Errorf("horizon must be positive, got %d", c.Horizon))
	}
	if c.Goroutines < 0 {
		errs = append(errs, fmt.Errorf("goroutines must not be negative, got %d", c.Goroutines))
	}
	if c.Rollouts < 0 {
		errs = append(errs, fmt.Errorf("rollouts must not be negative, got %d", c.Rollouts))
	}
	if c.Budget <= 0 && c.Rollouts <= 0 {
		errs = append(errs, errors.New("either budget or rollouts must be set"))
	}
	if c.SeedWindow != "per_ply" && c.SeedWindow != "per_rollout" {
		errs = append(errs, fmt.Errorf("unknown seed window %q", c.SeedWindow))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the configured log level, info when it cannot be parsed.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
