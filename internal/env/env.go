// Package env reads the runtime settings of the convdict CLI from the environment.
package env

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Environment names the deployment flavor, which selects the log format.
type Environment string

const (
	// Development logs colored text to stderr.
	Development Environment = "development"
	// Production logs JSON to stderr.
	Production Environment = "production"
)

// Settings holds environment-derived settings.
// Variable names are listed in the envvar package.
type Settings struct {
	Env      Environment `env:"CONVDICT_ENV"       envDefault:"development"`
	LogLevel slog.Level  `env:"CONVDICT_LOG_LEVEL" envDefault:"info"`
	LogFile  string      `env:"CONVDICT_LOG_FILE"`
}

// Load parses Settings from the environment.
func Load() (Settings, error) {
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("env: parse settings: %w", err)
	}

	switch settings.Env {
	case Development, Production:
	default:
		return Settings{}, fmt.Errorf("env: unknown environment %q", settings.Env)
	}

	return settings, nil
}

// FromEnv is Load falling back to development defaults on error.
func FromEnv() Settings {
	settings, err := Load()
	if err != nil {
		slog.Warn("Invalid environment settings, using defaults", "error", err)
		return Settings{Env: Development, LogLevel: slog.LevelInfo}
	}

	return settings
}
