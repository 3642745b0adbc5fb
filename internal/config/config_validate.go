// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}

	if err := c.validateLookup(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validSourceFormats defines the allowed table formats
var validSourceFormats = map[string]bool{
	"":        true,
	"auto":    true,
	"csv":     true,
	"parquet": true,
	"json":    true,
}

// validateSource validates the problem table source configuration
func (c *Config) validateSource() error {
	if c.Source.Path == "" {
		return fmt.Errorf("PROBLEMS_PATH is required")
	}
	if !validSourceFormats[c.Source.Format] {
		return fmt.Errorf("PROBLEMS_FORMAT must be one of: auto, csv, parquet, json")
	}
	if c.Source.ReloadOnChange && c.Source.WatchInterval < time.Second {
		return fmt.Errorf("PROBLEMS_WATCH_INTERVAL must be at least 1s when reload on change is enabled")
	}
	if c.Source.LoadTimeout <= 0 {
		return fmt.Errorf("PROBLEMS_LOAD_TIMEOUT must be positive")
	}
	if c.Source.BreakerFailures < 1 {
		return fmt.Errorf("PROBLEMS_BREAKER_FAILURES must be at least 1")
	}
	if c.Source.BreakerTimeout <= 0 {
		return fmt.Errorf("PROBLEMS_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateLookup validates the lookup cache configuration
func (c *Config) validateLookup() error {
	if c.Lookup.CacheCapacity < 1 {
		return fmt.Errorf("LOOKUP_CACHE_CAPACITY must be at least 1")
	}
	return nil
}

// validateRecommend validates recommendation limits and selector thresholds
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.OverFetchFactor < 1 {
		return fmt.Errorf("RECOMMEND_OVER_FETCH_FACTOR must be at least 1")
	}
	if r.DefaultLimit < 1 || r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be at least 1 and not exceed RECOMMEND_MAX_LIMIT")
	}
	if r.MaxWeeks < 1 {
		return fmt.Errorf("RECOMMEND_MAX_WEEKS must be at least 1")
	}
	if r.MaxDailyGoal < 1 {
		return fmt.Errorf("RECOMMEND_MAX_DAILY_GOAL must be at least 1")
	}
	return c.validateThresholds()
}

// validateThresholds validates selector thresholds
func (c *Config) validateThresholds() error {
	t := &c.Recommend.Thresholds
	if !unitInterval(t.HiddenGemMinOriginality) {
		return fmt.Errorf("HIDDEN_GEM_MIN_ORIGINALITY must be between 0 and 1")
	}
	if !unitInterval(t.RisingMinOriginality) {
		return fmt.Errorf("RISING_MIN_ORIGINALITY must be between 0 and 1")
	}
	if t.HiddenGemMaxVotes < 0 || t.ClassicMinLikes < 0 || t.RisingMinVotes < 0 {
		return fmt.Errorf("vote and like thresholds must not be negative")
	}
	if t.RisingMaxVotes < t.RisingMinVotes {
		return fmt.Errorf("RISING_MAX_VOTES must be >= RISING_MIN_VOTES")
	}
	return nil
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard CORS in production when an admin token
// protects mutating endpoints.
func (c *Config) validateCORS() error {
	if c.Security.AdminToken != "" && c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production with ADMIN_TOKEN set. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Security.AdminToken != "" && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
