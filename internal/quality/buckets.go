// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package quality

import (
	"fmt"
	"math"
	"strings"
)

// Tier classifies a problem by OriginalityScore.
type Tier int

const (
	// TierUnknown is used for rows without metadata (enrichment defaults).
	TierUnknown Tier = iota
	// TierPoor covers originality in [0, 0.5].
	TierPoor
	// TierAverage covers originality in (0.5, 0.7].
	TierAverage
	// TierGood covers originality in (0.7, 0.9].
	TierGood
	// TierExcellent covers originality in (0.9, 1.0].
	TierExcellent
)

// AgeCategory classifies a problem by vote volume, a proxy for exposure.
type AgeCategory int

const (
	// AgeUnknown is used for rows without metadata (enrichment defaults).
	AgeUnknown AgeCategory = iota
	// AgeNew covers total votes in [0, 100].
	AgeNew
	// AgeGrowing covers total votes in (100, 1000].
	AgeGrowing
	// AgeEstablished covers total votes in (1000, 5000].
	AgeEstablished
	// AgeClassic covers total votes above 5000.
	AgeClassic
)

// tierBound is one row of the ordered tier table.
type tierBound struct {
	upper float64
	tier  Tier
}

// ageBound is one row of the ordered age table.
type ageBound struct {
	upper float64
	age   AgeCategory
}

// tierBounds is ordered by upper bound. Each bucket is (previous upper, upper].
var tierBounds = []tierBound{
	{upper: 0.5, tier: TierPoor},
	{upper: 0.7, tier: TierAverage},
	{upper: 0.9, tier: TierGood},
	{upper: 1.0, tier: TierExcellent},
}

// ageBounds is ordered by upper bound. Each bucket is (previous upper, upper].
var ageBounds = []ageBound{
	{upper: 100, age: AgeNew},
	{upper: 1000, age: AgeGrowing},
	{upper: 5000, age: AgeEstablished},
	{upper: math.Inf(1), age: AgeClassic},
}

var tierNames = map[Tier]string{
	TierUnknown:   "Unknown",
	TierPoor:      "Poor",
	TierAverage:   "Average",
	TierGood:      "Good",
	TierExcellent: "Excellent",
}

var ageNames = map[AgeCategory]string{
	AgeUnknown:     "Unknown",
	AgeNew:         "New",
	AgeGrowing:     "Growing",
	AgeEstablished: "Established",
	AgeClassic:     "Classic",
}

// TierFor buckets an originality score. Scores outside [0, 1] (or NaN)
// return TierUnknown.
func TierFor(originality float64) Tier {
	if math.IsNaN(originality) || originality < 0 {
		return TierUnknown
	}
	for _, b := range tierBounds {
		if originality <= b.upper {
			return b.tier
		}
	}
	return TierUnknown
}

// AgeFor buckets a total vote count. Negative counts return AgeUnknown.
func AgeFor(totalVotes int64) AgeCategory {
	if totalVotes < 0 {
		return AgeUnknown
	}
	v := float64(totalVotes)
	for _, b := range ageBounds {
		if v <= b.upper {
			return b.age
		}
	}
	return AgeUnknown
}

// Tiers returns the named tiers in ascending order.
func Tiers() []Tier {
	out := make([]Tier, len(tierBounds))
	for i, b := range tierBounds {
		out[i] = b.tier
	}
	return out
}

// AgeCategories returns the named age categories in ascending order.
func AgeCategories() []AgeCategory {
	out := make([]AgeCategory, len(ageBounds))
	for i, b := range ageBounds {
		out[i] = b.age
	}
	return out
}

// String returns the tier label.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return tierNames[TierUnknown]
}

// MarshalText encodes the tier as its label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier label (case-insensitive).
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier parses a tier label (case-insensitive).
func ParseTier(s string) (Tier, error) {
	for tier, name := range tierNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return tier, nil
		}
	}
	return TierUnknown, fmt.Errorf("unknown quality tier %q", s)
}

// String returns the age category label.
func (a AgeCategory) String() string {
	if name, ok := ageNames[a]; ok {
		return name
	}
	return ageNames[AgeUnknown]
}

// MarshalText encodes the age category as its label.
func (a AgeCategory) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an age category label (case-insensitive).
func (a *AgeCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseAgeCategory(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAgeCategory parses an age category label (case-insensitive).
func ParseAgeCategory(s string) (AgeCategory, error) {
	for age, name := range ageNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return age, nil
		}
	}
	return AgeUnknown, fmt.Errorf("unknown age category %q", s)
}
