// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package config provides layered application configuration via Koanf v2.
//
// Configuration loading order (highest priority wins):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables (SERVER_PORT, DATASET_PATH, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dataset DatasetConfig `koanf:"dataset"`
	Engine  EngineConfig  `koanf:"engine"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables:
//   - SERVER_HOST: bind address (default: 0.0.0.0)
//   - SERVER_PORT: listen port (default: 8080)
//   - SERVER_TIMEOUT: read/write timeout (default: 30s)
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// DatasetConfig holds the user dataset source settings. The dataset is
// loaded once at startup into a read-only in-memory store.
//
// Environment variables:
//   - DATASET_PATH: CSV file path (default: data/mock_user_data.csv)
//   - DATASET_SEED_MOCK: generate a mock dataset when no CSV exists
//   - DATASET_SEED_USERS: number of mock users to generate
type DatasetConfig struct {
	Path      string `koanf:"path"`
	SeedMock  bool   `koanf:"seed_mock"`
	SeedUsers int    `koanf:"seed_users"`
}

// EngineConfig holds decision engine settings. The fallback threshold is
// deliberately absent: it is a closed design constant of the engine.
//
// Environment variables:
//   - ENGINE_PROVIDER_SEED: rand seed for the mock provider (0 = clock)
type EngineConfig struct {
	ProviderSeed int64 `koanf:"provider_seed"`
}

// APIConfig holds API middleware settings.
//
// Environment variables:
//   - API_RATE_LIMIT_REQS, API_RATE_LIMIT_WINDOW, API_RATE_LIMIT_DISABLED
//   - API_CORS_ORIGINS: comma-separated allowed origins
type APIConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
//
// Environment variables:
//   - LOGGING_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOGGING_FORMAT: json or console (default: json)
//   - LOGGING_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for malformed values. Called by
// Load() after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be in 1-65535", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("invalid server timeout %v: must be positive", c.Server.Timeout)
	}
	if c.Dataset.Path == "" && !c.Dataset.SeedMock {
		return fmt.Errorf("dataset path is required unless mock seeding is enabled")
	}
	if c.Dataset.SeedMock && c.Dataset.SeedUsers < 1 {
		return fmt.Errorf("invalid dataset seed_users %d: must be at least 1", c.Dataset.SeedUsers)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("invalid rate limit %d: must be at least 1", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("invalid rate limit window %v: must be positive", c.API.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q: must be json or console", c.Logging.Format)
	}
	return nil
}
