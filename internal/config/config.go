// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config holds all application configuration.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	Mode      string `env:"GIN_MODE" envDefault:"release"`
	ExportDir string `env:"SITE_EXPORT_DIR" envDefault:"dist"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid gin mode %q", c.Mode)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export dir is required")
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
