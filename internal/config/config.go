package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the top-level service configuration loaded from config.toml.
type Config struct {
	Server   Server   `toml:"server"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Calendar Calendar `toml:"calendar"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type Calendar struct {
	// Timezone is display metadata attached to responses; the engine itself
	// works on minute offsets and performs no timezone conversion.
	Timezone string `toml:"timezone"`
	// SeedEventTypes controls whether the default event type labels are
	// created on startup.
	SeedEventTypes bool `toml:"seed_event_types"`
}

// Load parses the TOML file at path and applies defaults for omitted fields.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: Logs{
			Level: "info",
		},
		Metrics: Metrics{
			Path:        "/metrics",
			ServiceName: "hrc-calendar-service",
		},
		Calendar: Calendar{
			Timezone:       "Europe/Moscow",
			SeedEventTypes: true,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return nil, fmt.Errorf("config: invalid server.http_port %d", cfg.Server.HTTPPort)
	}

	return cfg, nil
}
