// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Engine produces recommendation lists, rankings and study plans from the
// table behind a lookup service. It is safe for concurrent use.
type Engine struct {
	config *Config
	lookup *lookup.Service
	store  *metadata.Store
	logger zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(svc *lookup.Service, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if svc == nil {
		return nil, errors.New("lookup service is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		lookup: svc,
		store:  svc.Store(),
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// selector is a metadata selector bound to a category.
type selector func(opts metadata.SelectorOptions) ([]metadata.Selection, error)

// categorySpec ties a category to its selector, score and reason label.
type categorySpec struct {
	category Category
	label    string
	selector selector
	score    func(p *quality.Problem) float64
}

func (e *Engine) spec(cat Category) categorySpec {
	switch cat {
	case CategoryClassics:
		return categorySpec{cat, "Interview classic", e.store.InterviewClassics, ClassicScore}
	case CategoryRisingStars:
		return categorySpec{cat, "Rising star", e.store.RisingStars, RisingStarScore}
	default:
		return categorySpec{CategoryHiddenGems, "Hidden gem", e.store.HiddenGems, GemScore}
	}
}

// HiddenGems returns highly rated, little-known problems ordered by
// GemScore.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (e *Engine) HiddenGems(opts RecommendOptions) ([]Recommendation, error) {
	return e.recommend(CategoryHiddenGems, e.config.clampLimit(opts.Limit), opts.Topics, opts.selectorOptions())
}

// Classics returns heavily liked interview staples ordered by ClassicScore.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (e *Engine) Classics(opts RecommendOptions) ([]Recommendation, error) {
	return e.recommend(CategoryClassics, e.config.clampLimit(opts.Limit), opts.Topics, opts.selectorOptions())
}

// RisingStars returns well rated problems with moderate traction ordered by
// RisingStarScore.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (e *Engine) RisingStars(opts RecommendOptions) ([]Recommendation, error) {
	return e.recommend(CategoryRisingStars, e.config.clampLimit(opts.Limit), opts.Topics, opts.selectorOptions())
}

// recommend over-fetches from the category selector, filters by topic,
// re-sorts by score and truncates. The limit is not clamped here so study
// plans can request more than the list maximum.
//
//nolint:gocritic // hugeParam: sel passed by value for immutability
func (e *Engine) recommend(cat Category, limit int, topics []string, sel metadata.SelectorOptions) ([]Recommendation, error) {
	if limit <= 0 {
		return []Recommendation{}, nil
	}
	spec := e.spec(cat)

	sel.Limit = limit * e.config.OverFetchFactor
	selections, err := spec.selector(sel)
	if errors.Is(err, metadata.ErrInvalidThreshold) {
		return []Recommendation{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err != nil {
		return []Recommendation{}, fmt.Errorf("select %s: %w", cat, err)
	}

	needles := normalizeTopics(topics)
	out := make([]Recommendation, 0, len(selections))
	for i := range selections {
		sel := &selections[i]
		if !matchesTopics(sel.Problem.TopicTags, needles) {
			continue
		}
		out = append(out, Recommendation{
			Problem:  sel.Problem,
			Category: spec.category,
			Score:    round4(spec.score(&sel.Problem)),
			Reason:   spec.label + ": " + sel.Justification,
		})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if len(out) > limit {
		out = out[:limit]
	}

	metrics.RecordRecommendations(string(cat), len(out))
	e.logger.Debug().
		Str("category", string(cat)).
		Int("limit", limit).
		Int("candidates", len(selections)).
		Int("returned", len(out)).
		Msg("Recommendations built")

	return out, nil
}

// GemScore scores a hidden gem.
func GemScore(p *quality.Problem) float64 {
	obscurity := 1 - math.Min(float64(p.TotalVotes)/1000, 1)
	return 0.5*p.OriginalityScore + 0.3*obscurity + 0.2*p.EngagementScore
}

// ClassicScore scores an interview classic.
func ClassicScore(p *quality.Problem) float64 {
	popularity := math.Min(float64(p.Likes)/10000, 1)
	reach := math.Min(float64(p.TotalVotes)/5000, 1)
	return 0.4*popularity + 0.4*p.OriginalityScore + 0.2*reach
}

// RisingStarScore scores a rising star.
func RisingStarScore(p *quality.Problem) float64 {
	return 0.6*p.OriginalityScore + 0.4*p.EngagementScore
}

func normalizeTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// matchesTopics reports whether any tag contains any needle. An empty
// needle set matches everything.
func matchesTopics(tags, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
	}
	return false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
