// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
)

// ReloadBreakerName labels the reload circuit breaker in metrics.
const ReloadBreakerName = "problem-table-reload"

// TableLoader publishes a new table generation from a source.
// *lookup.Service satisfies it.
type TableLoader interface {
	Reload(ctx context.Context, src source.Source) error
	Store() *metadata.Store
}

// WatchedSource is a source whose modification time can be polled.
// *source.FileSource satisfies it.
type WatchedSource interface {
	source.Source
	ModTime() (time.Time, error)
}

// ReloadServiceConfig configures the reload service.
type ReloadServiceConfig struct {
	// WatchInterval is how often the source modification time is polled.
	// Default: 30s
	WatchInterval time.Duration

	// ReloadOnChange enables polling. Manual reloads work either way.
	ReloadOnChange bool

	// LoadTimeout bounds a single load. Default: 2m
	LoadTimeout time.Duration

	// BreakerFailures is the number of consecutive failed loads that open
	// the breaker. Default: 3
	BreakerFailures uint32

	// BreakerTimeout is how long the open breaker rejects loads before a
	// single trial load is allowed. Default: 5m
	BreakerTimeout time.Duration
}

func (c *ReloadServiceConfig) applyDefaults() {
	if c.WatchInterval <= 0 {
		c.WatchInterval = 30 * time.Second
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = 2 * time.Minute
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 3
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = 5 * time.Minute
	}
}

// ReloadService keeps the problem table in sync with its source file.
//
// Every load, whether triggered by a file change, by a retry of a failed
// initial load or by ReloadNow, passes through one circuit breaker. A
// failed load leaves the previous generation serving.
type ReloadService struct {
	loader  TableLoader
	source  WatchedSource
	config  ReloadServiceConfig
	breaker *gobreaker.CircuitBreaker[int]
	logger  zerolog.Logger

	mu      sync.Mutex
	lastMod time.Time
}

// NewReloadService creates a reload service for src.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(loader TableLoader, src WatchedSource, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	cfg.applyDefaults()
	s := &ReloadService{
		loader: loader,
		source: src,
		config: cfg,
		logger: logger.With().Str("service", "table-reload").Str("source", src.String()).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(ReloadBreakerName).Set(0)
	s.breaker = gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        ReloadBreakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Reload circuit breaker state changed")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	})
	return s
}

// stateValue is the circuit_breaker_state gauge value of a state.
func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// ReloadNow loads the source once and returns the row count of the new
// generation. It returns gobreaker.ErrOpenState while the breaker is open.
func (s *ReloadService) ReloadNow(ctx context.Context) (int, error) {
	mod, modErr := s.source.ModTime()

	rows, err := s.breaker.Execute(func() (int, error) {
		loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
		defer cancel()

		if err := s.loader.Reload(loadCtx, s.source); err != nil {
			return 0, err
		}
		return s.loader.Store().Stats().Rows, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, fmt.Errorf("reload rejected: %w", err)
		}
		return 0, err
	}

	if modErr == nil {
		s.mu.Lock()
		s.lastMod = mod
		s.mu.Unlock()
	}
	return rows, nil
}

// State returns the breaker state.
func (s *ReloadService) State() gobreaker.State {
	return s.breaker.State()
}

// Serve implements suture.Service. With ReloadOnChange it polls the source
// every WatchInterval and reloads when the modification time advances or
// the table has never loaded.
func (s *ReloadService) Serve(ctx context.Context) error {
	if !s.config.ReloadOnChange {
		s.logger.Info().Msg("Change polling disabled; manual reloads only")
		<-ctx.Done()
		return ctx.Err()
	}

	s.mu.Lock()
	if s.lastMod.IsZero() && s.loader.Store().Loaded() {
		if mod, err := s.source.ModTime(); err == nil {
			s.lastMod = mod
		}
	}
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.config.WatchInterval).Msg("Watching problem table for changes")

	ticker := time.NewTicker(s.config.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *ReloadService) poll(ctx context.Context) {
	mod, err := s.source.ModTime()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Problem table stat failed")
		return
	}

	s.mu.Lock()
	changed := mod.After(s.lastMod)
	s.mu.Unlock()

	if !changed && s.loader.Store().Loaded() {
		return
	}

	rows, err := s.ReloadNow(ctx)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		s.logger.Debug().Msg("Reload skipped while circuit breaker is open")
	case err != nil:
		s.logger.Error().Err(err).Msg("Problem table reload failed; previous generation keeps serving")
	default:
		s.logger.Info().Int("rows", rows).Time("modified", mod).Msg("Problem table reloaded after change")
	}
}

// String identifies the service in supervisor events.
func (s *ReloadService) String() string {
	return "table-reload"
}
