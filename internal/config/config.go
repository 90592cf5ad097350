package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, populated from environment
// variables. Flags in cmd/server override individual fields.
type Config struct {
	Addr       string `env:"NUZLOG_ADDR" envDefault:":8080"`
	DBPath     string `env:"NUZLOG_DB" envDefault:"nuzlog.sqlite3"`
	JWTSecret  string `env:"NUZLOG_JWT_SECRET"`
	PokeAPIURL string `env:"NUZLOG_POKEAPI_URL"`
	LogPath    string `env:"NUZLOG_LOG"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
