// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package metadata

import (
	"fmt"
	"sort"

	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Predicate filters rows in Select.
type Predicate func(p *quality.Problem) bool

// SortKey extracts a descending sort key in Select.
type SortKey func(p *quality.Problem) float64

// Common sort keys.
var (
	ByOriginality SortKey = func(p *quality.Problem) float64 { return p.OriginalityScore }
	ByEngagement  SortKey = func(p *quality.Problem) float64 { return p.EngagementScore }
	ByLikes       SortKey = func(p *quality.Problem) float64 { return float64(p.Likes) }
	ByTotalVotes  SortKey = func(p *quality.Problem) float64 { return float64(p.TotalVotes) }
)

// SelectOptions configures Select.
type SelectOptions struct {
	// Predicates are combined conjunctively.
	Predicates []Predicate

	// SortKeys order the result descending, compared in sequence. Rows equal
	// on every key keep table order.
	SortKeys []SortKey

	// Limit caps the result. Zero or negative means no limit.
	Limit int

	// ExcludePaid drops paid-only rows.
	ExcludePaid bool
}

// SelectorOptions configures the named selectors. Nil thresholds fall back
// to the store's configured Thresholds. Each selector reads only the
// thresholds it applies.
type SelectorOptions struct {
	Limit       int
	ExcludePaid bool

	// MinOriginality applies to HiddenGems and RisingStars.
	MinOriginality *float64

	// MaxTotalVotes applies to HiddenGems.
	MaxTotalVotes *int64

	// MinLikes applies to InterviewClassics.
	MinLikes *int64

	// MinVotes and MaxVotes bound RisingStars.
	MinVotes *int64
	MaxVotes *int64
}

// thresholdsFor overlays the per-call thresholds on the configured ones.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (s *Store) thresholdsFor(opts SelectorOptions) (Thresholds, error) {
	t := s.thresholds
	if opts.MinOriginality != nil {
		t.HiddenGemMinOriginality = *opts.MinOriginality
		t.RisingMinOriginality = *opts.MinOriginality
	}
	if opts.MaxTotalVotes != nil {
		t.HiddenGemMaxVotes = *opts.MaxTotalVotes
	}
	if opts.MinLikes != nil {
		t.ClassicMinLikes = *opts.MinLikes
	}
	if opts.MinVotes != nil {
		t.RisingMinVotes = *opts.MinVotes
	}
	if opts.MaxVotes != nil {
		t.RisingMaxVotes = *opts.MaxVotes
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%w: %w", ErrInvalidThreshold, err)
	}
	return t, nil
}

// Selection is a selected row with a short human-readable justification.
type Selection struct {
	Problem       quality.Problem `json:"problem"`
	Justification string          `json:"justification"`
}

// Select filters, sorts and truncates the table.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (s *Store) Select(opts SelectOptions) ([]quality.Problem, error) {
	gen, err := s.snapshot("select")
	if err != nil {
		return nil, err
	}
	return selectRows(gen.problems, opts), nil
}

//nolint:gocritic // hugeParam: opts passed by value for immutability
func selectRows(rows []quality.Problem, opts SelectOptions) []quality.Problem {
	out := make([]quality.Problem, 0)
	for i := range rows {
		p := &rows[i]
		if opts.ExcludePaid && p.IsPaidOnly {
			continue
		}
		if matchesAll(p, opts.Predicates) {
			out = append(out, *p)
		}
	}

	if len(opts.SortKeys) > 0 {
		sort.SliceStable(out, func(a, b int) bool {
			for _, key := range opts.SortKeys {
				ka, kb := key(&out[a]), key(&out[b])
				if ka != kb {
					return ka > kb
				}
			}
			return false
		})
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

func matchesAll(p *quality.Problem, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// HiddenGems selects highly rated problems with few votes, sorted by
// originality then engagement.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (s *Store) HiddenGems(opts SelectorOptions) ([]Selection, error) {
	t, err := s.thresholdsFor(opts)
	if err != nil {
		return nil, err
	}
	rows, err := s.Select(SelectOptions{
		Predicates: []Predicate{
			func(p *quality.Problem) bool { return p.OriginalityScore >= t.HiddenGemMinOriginality },
			func(p *quality.Problem) bool { return p.TotalVotes <= t.HiddenGemMaxVotes },
		},
		SortKeys:    []SortKey{ByOriginality, ByEngagement},
		Limit:       opts.Limit,
		ExcludePaid: opts.ExcludePaid,
	})
	if err != nil {
		return nil, err
	}
	return justify(rows, func(p *quality.Problem) string {
		return fmt.Sprintf("%.0f%% originality with only %d votes", p.OriginalityScore*100, p.TotalVotes)
	}), nil
}

// InterviewClassics selects heavily liked problems, sorted by likes then
// originality.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (s *Store) InterviewClassics(opts SelectorOptions) ([]Selection, error) {
	t, err := s.thresholdsFor(opts)
	if err != nil {
		return nil, err
	}
	rows, err := s.Select(SelectOptions{
		Predicates: []Predicate{
			func(p *quality.Problem) bool { return p.Likes >= t.ClassicMinLikes },
		},
		SortKeys:    []SortKey{ByLikes, ByOriginality},
		Limit:       opts.Limit,
		ExcludePaid: opts.ExcludePaid,
	})
	if err != nil {
		return nil, err
	}
	return justify(rows, func(p *quality.Problem) string {
		return fmt.Sprintf("%d likes with %.0f%% originality", p.Likes, p.OriginalityScore*100)
	}), nil
}

// RisingStars selects well rated problems with a moderate vote count,
// sorted by originality then engagement.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (s *Store) RisingStars(opts SelectorOptions) ([]Selection, error) {
	t, err := s.thresholdsFor(opts)
	if err != nil {
		return nil, err
	}
	rows, err := s.Select(SelectOptions{
		Predicates: []Predicate{
			func(p *quality.Problem) bool { return p.OriginalityScore >= t.RisingMinOriginality },
			func(p *quality.Problem) bool {
				return p.TotalVotes >= t.RisingMinVotes && p.TotalVotes <= t.RisingMaxVotes
			},
		},
		SortKeys:    []SortKey{ByOriginality, ByEngagement},
		Limit:       opts.Limit,
		ExcludePaid: opts.ExcludePaid,
	})
	if err != nil {
		return nil, err
	}
	return justify(rows, func(p *quality.Problem) string {
		return fmt.Sprintf("%.0f%% originality across %d votes", p.OriginalityScore*100, p.TotalVotes)
	}), nil
}

// Thresholds returns the configured selector thresholds.
func (s *Store) Thresholds() Thresholds {
	return s.thresholds
}

func justify(rows []quality.Problem, reason func(p *quality.Problem) string) []Selection {
	out := make([]Selection, len(rows))
	for i := range rows {
		out[i] = Selection{Problem: rows[i], Justification: reason(&rows[i])}
	}
	return out
}
