// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package lookup resolves problem titles to quality metadata through a
// bounded cache and merges that metadata onto caller records.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/cache"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
)

// DefaultCacheCapacity is the default number of cached lookups.
const DefaultCacheCapacity = 1000

// Config contains lookup service configuration.
type Config struct {
	// CacheCapacity bounds the number of cached lookups.
	CacheCapacity int `json:"cache_capacity"`
}

// DefaultConfig returns the default lookup configuration.
func DefaultConfig() *Config {
	return &Config{CacheCapacity: DefaultCacheCapacity}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("cache_capacity must be positive, got %d", c.CacheCapacity)
	}
	return nil
}

// cacheEntry is either formatted metadata or a not-found marker, tagged with
// the table generation it was computed against.
type cacheEntry struct {
	meta       Metadata
	found      bool
	generation uint64
}

// Stats reports lookup cache effectiveness.
type Stats struct {
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
	Size       int     `json:"size"`
	Capacity   int     `json:"capacity"`
	// Evictions counts capacity evictions since the last reload.
	Evictions  int64   `json:"evictions"`
	Generation uint64  `json:"generation"`
}

// Service answers cached title lookups against a metadata.Store.
//
// The cache is cleared atomically with every table reload through a store
// reload hook. Entries computed against an older generation are never
// inserted or served.
type Service struct {
	store *metadata.Store
	cache *cache.LRUCache[cacheEntry]

	// mu orders cache inserts against Reset. Inserts hold the read lock.
	mu sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64

	logger zerolog.Logger
}

// NewService creates a lookup service over store and registers its cache
// reset as a reload hook.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(store *metadata.Store, cfg *Config, logger zerolog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("metadata store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lookup config: %w", err)
	}

	s := &Service{
		store:  store,
		cache:  cache.NewLRUCache[cacheEntry](cfg.CacheCapacity),
		logger: logger.With().Str("component", "lookup").Logger(),
	}
	store.OnReload(func(gen uint64) {
		s.Reset()
		s.logger.Debug().Uint64("generation", gen).Msg("Lookup cache cleared on reload")
	})
	return s, nil
}

// Store returns the underlying metadata store.
func (s *Service) Store() *metadata.Store {
	return s.store
}

// Lookup returns the metadata for title. The second result is false when
// the title matches no row or the store is not loaded. Not-found results are
// cached like matches.
func (s *Service) Lookup(title string) (Metadata, bool) {
	current := s.store.Generation()
	if e, ok := s.cache.Get(title); ok && e.generation == current {
		s.hits.Add(1)
		metrics.RecordLookup(true)
		return e.meta, e.found
	}
	s.misses.Add(1)
	metrics.RecordLookup(false)

	p, gen, err := s.store.LookupWithGeneration(title)
	switch {
	case errors.Is(err, metadata.ErrNotReady):
		return Metadata{}, false
	case err != nil && !errors.Is(err, metadata.ErrNotFound):
		s.logger.Warn().Err(err).Str("title", title).Msg("Lookup failed")
		return Metadata{}, false
	}

	e := cacheEntry{found: err == nil, generation: gen}
	if e.found {
		e.meta = FromProblem(&p)
	}

	s.mu.RLock()
	if gen == s.store.Generation() {
		if s.cache.Put(title, e) {
			metrics.LookupCacheEvictions.Inc()
		}
	}
	s.mu.RUnlock()
	metrics.LookupCacheEntries.Set(float64(s.cache.Len()))

	return e.meta, e.found
}

// Reset clears the cache and zeroes the hit and miss counters.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
	s.hits.Store(0)
	s.misses.Store(0)
	metrics.LookupCacheEntries.Set(0)
}

// Reload loads the table from src into the store. The cache is cleared as
// part of the store's reload.
func (s *Service) Reload(ctx context.Context, src source.Source) error {
	return s.store.Load(ctx, src)
}

// Stats returns the current cache statistics.
func (s *Service) Stats() Stats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	st := Stats{
		Hits:       hits,
		Misses:     misses,
		Size:       s.cache.Len(),
		Capacity:   s.cache.Capacity(),
		Evictions:  s.cache.Evictions(),
		Generation: s.store.Generation(),
	}
	if total := hits + misses; total > 0 {
		st.HitRate = float64(hits) / float64(total)
	}
	return st
}
