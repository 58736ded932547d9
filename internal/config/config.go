package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the environment-driven settings. The --db flag on the
// CLI takes priority over DBPath.
type Config struct {
	// DBPath overrides the default XDG database location.
	DBPath string `env:"SINONIMOAK_DB" env-default:""`

	// LogFile receives structured logs. Empty disables file logging
	// (the TUI owns the terminal, so there is no console fallback).
	LogFile string `env:"SINONIMOAK_LOG" env-default:""`

	// DefaultLevel preselects the difficulty level on the setup screen.
	DefaultLevel int `env:"SINONIMOAK_LEVEL" env-default:"1"`

	// MaxLevel is the highest difficulty tier offered in setup.
	MaxLevel int `env:"SINONIMOAK_MAX_LEVEL" env-default:"3"`

	// HistoryLimit caps how many past runs the history screen loads.
	HistoryLimit int `env:"SINONIMOAK_HISTORY_LIMIT" env-default:"50"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	if cfg.DefaultLevel < 1 {
		cfg.DefaultLevel = 1
	}
	if cfg.MaxLevel < cfg.DefaultLevel {
		cfg.MaxLevel = cfg.DefaultLevel
	}
	return cfg, nil
}
