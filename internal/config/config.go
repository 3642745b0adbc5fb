// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	server := http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)}
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Source    SourceConfig    `koanf:"source"`
	Lookup    LookupConfig    `koanf:"lookup"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// SourceConfig describes the problem table and how it is reloaded.
//
// Environment Variables:
//   - PROBLEMS_PATH: Path to the problem table file (CSV, Parquet or JSON)
//   - PROBLEMS_FORMAT: auto, csv, parquet or json (default: auto)
//   - PROBLEMS_WATCH_INTERVAL: Modification time poll interval (default: 30s)
//   - PROBLEMS_RELOAD_ON_CHANGE: Reload when the file changes (default: true)
//   - PROBLEMS_LOAD_TIMEOUT: Timeout of a single load (default: 2m)
//   - PROBLEMS_BREAKER_FAILURES: Consecutive load failures that open the breaker (default: 3)
//   - PROBLEMS_BREAKER_TIMEOUT: Open breaker cool-down (default: 5m)
type SourceConfig struct {
	Path           string        `koanf:"path"`
	Format         string        `koanf:"format"`
	WatchInterval  time.Duration `koanf:"watch_interval"`
	ReloadOnChange bool          `koanf:"reload_on_change"`
	LoadTimeout    time.Duration `koanf:"load_timeout"`

	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// LookupConfig holds the lookup cache settings.
type LookupConfig struct {
	// CacheCapacity is the maximum number of memoized title lookups.
	CacheCapacity int `koanf:"cache_capacity"`
}

// RecommendConfig holds recommendation limits and selector thresholds.
type RecommendConfig struct {
	OverFetchFactor int `koanf:"over_fetch_factor"`
	DefaultLimit    int `koanf:"default_limit"`
	MaxLimit        int `koanf:"max_limit"`
	MaxWeeks        int `koanf:"max_weeks"`
	MaxDailyGoal    int `koanf:"max_daily_goal"`

	Thresholds ThresholdsConfig `koanf:"thresholds"`
}

// ThresholdsConfig holds the hidden gem, classic and rising star cut-offs.
type ThresholdsConfig struct {
	HiddenGemMinOriginality float64 `koanf:"hidden_gem_min_originality"`
	HiddenGemMaxVotes       int64   `koanf:"hidden_gem_max_votes"`
	ClassicMinLikes         int64   `koanf:"classic_min_likes"`
	RisingMinOriginality    float64 `koanf:"rising_min_originality"`
	RisingMinVotes          int64   `koanf:"rising_min_votes"`
	RisingMaxVotes          int64   `koanf:"rising_max_votes"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// AdminToken protects POST /api/v1/admin/reload when set.
	AdminToken string `koanf:"admin_token"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources in precedence order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address of the HTTP server.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
