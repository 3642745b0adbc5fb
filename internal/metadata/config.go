// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package metadata

import "fmt"

// Config contains the store configuration.
type Config struct {
	Thresholds Thresholds `json:"thresholds"`
}

// Thresholds are the default predicates of the named selectors. Callers
// override them per call through SelectorOptions.
type Thresholds struct {
	// HiddenGemMinOriginality is the minimum originality of a hidden gem.
	HiddenGemMinOriginality float64 `json:"hidden_gem_min_originality"`

	// HiddenGemMaxVotes is the maximum total votes of a hidden gem.
	HiddenGemMaxVotes int64 `json:"hidden_gem_max_votes"`

	// ClassicMinLikes is the minimum likes of an interview classic.
	ClassicMinLikes int64 `json:"classic_min_likes"`

	// RisingMinOriginality is the minimum originality of a rising star.
	RisingMinOriginality float64 `json:"rising_min_originality"`

	// RisingMinVotes and RisingMaxVotes bound the total votes of a rising star.
	RisingMinVotes int64 `json:"rising_min_votes"`
	RisingMaxVotes int64 `json:"rising_max_votes"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() *Config {
	return &Config{Thresholds: DefaultThresholds()}
}

// DefaultThresholds returns the standard selector thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HiddenGemMinOriginality: 0.85,
		HiddenGemMaxVotes:       1000,
		ClassicMinLikes:         5000,
		RisingMinOriginality:    0.8,
		RisingMinVotes:          50,
		RisingMaxVotes:          500,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return c.Thresholds.Validate()
}

// Validate checks that originality bounds lie in [0,1] and vote bounds are
// non-negative and ordered.
//
//nolint:gocritic // hugeParam: thresholds passed by value for immutability
func (t Thresholds) Validate() error {
	if t.HiddenGemMinOriginality < 0 || t.HiddenGemMinOriginality > 1 {
		return fmt.Errorf("hidden_gem_min_originality must be in [0,1], got %v", t.HiddenGemMinOriginality)
	}
	if t.RisingMinOriginality < 0 || t.RisingMinOriginality > 1 {
		return fmt.Errorf("rising_min_originality must be in [0,1], got %v", t.RisingMinOriginality)
	}
	if t.HiddenGemMaxVotes < 0 || t.ClassicMinLikes < 0 || t.RisingMinVotes < 0 {
		return fmt.Errorf("vote and like thresholds must be non-negative")
	}
	if t.RisingMaxVotes < t.RisingMinVotes {
		return fmt.Errorf("rising_max_votes (%d) must be >= rising_min_votes (%d)", t.RisingMaxVotes, t.RisingMinVotes)
	}
	return nil
}
