// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
)

var (
	// ErrNotReady is returned by reads before the first successful load.
	ErrNotReady = errors.New("metadata store not loaded")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("problem not found")

	// ErrInvalidThreshold is returned when selector thresholds are out of
	// range.
	ErrInvalidThreshold = errors.New("invalid selector threshold")

	// ErrSourceUnavailable is returned when the table source cannot be read.
	// It is the same value as source.ErrUnavailable.
	ErrSourceUnavailable = source.ErrUnavailable
)

// ReloadHook is called after a generation is published or the store is
// unloaded. generation is 0 after Unload.
type ReloadHook func(generation uint64)

// generation is one immutable snapshot of the table.
type generation struct {
	number   uint64
	problems []quality.Problem
	byTitle  map[string]int
	byLower  map[string]int
	lower    []string
	summary  quality.Summary
	loadedAt time.Time
	duration time.Duration
	source   string
}

// Stats describes the currently served generation.
type Stats struct {
	Loaded       bool          `json:"loaded"`
	Generation   uint64        `json:"generation"`
	Rows         int           `json:"rows"`
	Source       string        `json:"source,omitempty"`
	LoadedAt     time.Time     `json:"loaded_at,omitempty"`
	LoadDuration time.Duration `json:"load_duration_ns,omitempty"`
}

// Store holds the problem table with derived metrics and answers lookups and
// selections against it.
//
// Loads are serialized. Each successful load publishes a new immutable
// generation through an atomic pointer, so readers never block and always
// observe either the previous or the new table in full.
type Store struct {
	mu     sync.Mutex
	hooks  []ReloadHook
	serial uint64

	current atomic.Pointer[generation]

	thresholds Thresholds
	logger     zerolog.Logger
}

// NewStore creates an unloaded store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(cfg *Config, logger zerolog.Logger) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid metadata config: %w", err)
	}
	return &Store{
		thresholds: cfg.Thresholds,
		logger:     logger.With().Str("component", "metadata").Logger(),
	}, nil
}

// OnReload registers a hook that runs while the load lock is still held,
// immediately after a new generation is published.
func (s *Store) OnReload(hook ReloadHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Load reads the table from src, computes metrics and the summary, and
// publishes the result. On failure the previous generation keeps serving and
// the returned error wraps ErrSourceUnavailable.
func (s *Store) Load(ctx context.Context, src source.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	raw, err := src.Load(ctx)
	if err != nil {
		metrics.RecordTableLoad(time.Since(start), 0, err)
		if !errors.Is(err, ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		s.logger.Error().
			Err(err).
			Str("source", src.String()).
			Bool("serving_previous", s.current.Load() != nil).
			Msg("Table load failed")
		return fmt.Errorf("load %s: %w", src.String(), err)
	}

	rows := quality.ComputeMetrics(raw)
	s.serial++
	gen := &generation{
		number:   s.serial,
		problems: rows,
		byTitle:  make(map[string]int, len(rows)),
		byLower:  make(map[string]int, len(rows)),
		lower:    make([]string, len(rows)),
		summary:  quality.Summarize(rows),
		loadedAt: time.Now(),
		source:   src.String(),
	}
	for i := range rows {
		low := strings.ToLower(rows[i].Title)
		gen.lower[i] = low
		// First occurrence wins for duplicate titles.
		if _, ok := gen.byTitle[rows[i].Title]; !ok {
			gen.byTitle[rows[i].Title] = i
		}
		if _, ok := gen.byLower[low]; !ok {
			gen.byLower[low] = i
		}
	}
	gen.duration = time.Since(start)

	s.current.Store(gen)
	s.runHooks(gen.number)

	metrics.RecordTableLoad(gen.duration, len(rows), nil)
	metrics.TableGeneration.Set(float64(gen.number))

	s.logger.Info().
		Str("source", gen.source).
		Int("rows", len(rows)).
		Uint64("generation", gen.number).
		Dur("duration", gen.duration).
		Msg("Problem table loaded")

	return nil
}

// Unload drops the served table. Subsequent reads return ErrNotReady.
func (s *Store) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Swap(nil) == nil {
		return
	}
	s.runHooks(0)
	metrics.TableGeneration.Set(0)
	s.logger.Info().Msg("Problem table unloaded")
}

func (s *Store) runHooks(gen uint64) {
	for _, hook := range s.hooks {
		hook(gen)
	}
}

// snapshot returns the served generation or ErrNotReady.
func (s *Store) snapshot(op string) (*generation, error) {
	gen := s.current.Load()
	if gen == nil {
		s.logger.Debug().Str("op", op).Msg("Store not loaded, returning no data")
		return nil, ErrNotReady
	}
	return gen, nil
}

// Loaded reports whether a generation is being served.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Generation returns the served generation number, or 0 when unloaded.
func (s *Store) Generation() uint64 {
	if gen := s.current.Load(); gen != nil {
		return gen.number
	}
	return 0
}

// Stats describes the served generation.
func (s *Store) Stats() Stats {
	gen := s.current.Load()
	if gen == nil {
		return Stats{}
	}
	return Stats{
		Loaded:       true,
		Generation:   gen.number,
		Rows:         len(gen.problems),
		Source:       gen.source,
		LoadedAt:     gen.loadedAt,
		LoadDuration: gen.duration,
	}
}

// Summary returns the table summary.
func (s *Store) Summary() (quality.Summary, error) {
	gen, err := s.snapshot("summary")
	if err != nil {
		return quality.Summary{}, err
	}
	return gen.summary, nil
}

// All returns a copy of every row in table order.
func (s *Store) All() ([]quality.Problem, error) {
	gen, err := s.snapshot("all")
	if err != nil {
		return nil, err
	}
	out := make([]quality.Problem, len(gen.problems))
	copy(out, gen.problems)
	return out, nil
}

// Lookup resolves a title in three stages: exact match, case-insensitive
// exact match, then case-insensitive containment of title within a row
// title. The containment stage picks the highest originality, first table
// occurrence on ties.
func (s *Store) Lookup(title string) (quality.Problem, error) {
	p, _, err := s.LookupWithGeneration(title)
	return p, err
}

// LookupWithGeneration is Lookup that also returns the generation the
// answer was computed against. The generation is returned with ErrNotFound
// as well.
func (s *Store) LookupWithGeneration(title string) (quality.Problem, uint64, error) {
	gen, err := s.snapshot("lookup")
	if err != nil {
		return quality.Problem{}, 0, err
	}

	if strings.TrimSpace(title) == "" {
		return quality.Problem{}, gen.number, ErrNotFound
	}

	if i, ok := gen.byTitle[title]; ok {
		return gen.problems[i], gen.number, nil
	}

	query := strings.ToLower(title)
	if i, ok := gen.byLower[query]; ok {
		return gen.problems[i], gen.number, nil
	}

	best := -1
	for i, low := range gen.lower {
		if !strings.Contains(low, query) {
			continue
		}
		if best < 0 || gen.problems[i].OriginalityScore > gen.problems[best].OriginalityScore {
			best = i
		}
	}
	if best >= 0 {
		return gen.problems[best], gen.number, nil
	}

	return quality.Problem{}, gen.number, ErrNotFound
}
