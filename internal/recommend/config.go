// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// OverFetchFactor multiplies the requested limit when reading from a
	// base selector, so topic filtering does not starve the result.
	OverFetchFactor int `json:"over_fetch_factor"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set a limit.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps the limit of a recommendation list.
	MaxLimit int `json:"max_limit"`

	// MaxWeeks caps the duration of a study plan.
	MaxWeeks int `json:"max_weeks"`

	// MaxDailyGoal caps the problems per day of a study plan.
	MaxDailyGoal int `json:"max_daily_goal"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OverFetchFactor: 3,
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
			MaxWeeks:     52,
			MaxDailyGoal: 20,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.OverFetchFactor < 1 {
		errs = append(errs, fmt.Errorf("over_fetch_factor must be >= 1, got %d", c.OverFetchFactor))
	}
	if c.Limits.DefaultLimit < 1 {
		errs = append(errs, fmt.Errorf("limits.default_limit must be >= 1, got %d", c.Limits.DefaultLimit))
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		errs = append(errs, fmt.Errorf("limits.max_limit (%d) must be >= default_limit (%d)",
			c.Limits.MaxLimit, c.Limits.DefaultLimit))
	}
	if c.Limits.MaxWeeks < 1 {
		errs = append(errs, fmt.Errorf("limits.max_weeks must be >= 1, got %d", c.Limits.MaxWeeks))
	}
	if c.Limits.MaxDailyGoal < 1 {
		errs = append(errs, fmt.Errorf("limits.max_daily_goal must be >= 1, got %d", c.Limits.MaxDailyGoal))
	}

	return errors.Join(errs...)
}

// clampLimit applies the default and maximum limit.
func (c *Config) clampLimit(limit int) int {
	if limit <= 0 {
		return c.Limits.DefaultLimit
	}
	if limit > c.Limits.MaxLimit {
		return c.Limits.MaxLimit
	}
	return limit
}
