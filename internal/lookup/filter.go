// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package lookup

import (
	"encoding/json"
	"strings"
)

// Criteria are optional, conjunctive quality filters. Nil and empty fields
// do not constrain.
type Criteria struct {
	MinOriginality *float64 `json:"min_originality,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxOriginality *float64 `json:"max_originality,omitempty" validate:"omitempty,gte=0,lte=1"`
	MinLikes       *int64   `json:"min_likes,omitempty" validate:"omitempty,gte=0"`
	MaxTotalVotes  *int64   `json:"max_total_votes,omitempty" validate:"omitempty,gte=0"`

	// QualityTiers and AgeCategories match labels case-insensitively.
	QualityTiers  []string `json:"quality_tiers,omitempty" validate:"omitempty,dive,min=1"`
	AgeCategories []string `json:"age_categories,omitempty" validate:"omitempty,dive,min=1"`

	ExcludePaid     bool `json:"exclude_paid,omitempty"`
	RequireSolution bool `json:"require_solution,omitempty"`
}

// IsZero reports whether the criteria constrain nothing.
func (c *Criteria) IsZero() bool {
	return c.MinOriginality == nil && c.MaxOriginality == nil &&
		c.MinLikes == nil && c.MaxTotalVotes == nil &&
		len(c.QualityTiers) == 0 && len(c.AgeCategories) == 0 &&
		!c.ExcludePaid && !c.RequireSolution
}

// Filter returns the records matching every criterion, in input order. When
// any record lacks quality fields the whole batch is enriched first. A
// record missing a field a criterion needs does not match.
//
//nolint:gocritic // hugeParam: criteria passed by value for immutability
func (s *Service) Filter(records []Record, criteria Criteria) []Record {
	if NeedsEnrichment(records) {
		records = s.Enrich(records)
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if criteria.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Match reports whether an enriched record satisfies every criterion.
func (c *Criteria) Match(rec Record) bool {
	if c.MinOriginality != nil || c.MaxOriginality != nil {
		v, ok := Float(rec[FieldOriginality])
		if !ok {
			return false
		}
		if c.MinOriginality != nil && v < *c.MinOriginality {
			return false
		}
		if c.MaxOriginality != nil && v > *c.MaxOriginality {
			return false
		}
	}
	if c.MinLikes != nil {
		v, ok := Float(rec[FieldLikes])
		if !ok || v < float64(*c.MinLikes) {
			return false
		}
	}
	if c.MaxTotalVotes != nil {
		v, ok := Float(rec[FieldTotalVotes])
		if !ok || v > float64(*c.MaxTotalVotes) {
			return false
		}
	}
	if len(c.QualityTiers) > 0 && !labelIn(rec[FieldTier], c.QualityTiers) {
		return false
	}
	if len(c.AgeCategories) > 0 && !labelIn(rec[FieldAge], c.AgeCategories) {
		return false
	}
	if c.ExcludePaid && Bool(rec[FieldPaidOnly]) {
		return false
	}
	if c.RequireSolution && !Bool(rec[FieldHasSolution]) {
		return false
	}
	return true
}

// NeedsEnrichment reports whether any record lacks quality fields.
func NeedsEnrichment(records []Record) bool {
	for _, rec := range records {
		if _, ok := rec[FieldOriginality]; !ok {
			return true
		}
	}
	return false
}

func labelIn(v any, allowed []string) bool {
	label, ok := v.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, label) {
			return true
		}
	}
	return false
}

// Float converts a numeric record value to float64.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool reads a boolean record value. Non-boolean values are false.
func Bool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
