// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/api"
	"github.com/antonk-nf/algopath2-sub001/internal/config"
	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/recommend"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
	"github.com/antonk-nf/algopath2-sub001/internal/supervisor/services"
)

// components are the long-lived domain objects of the server.
type components struct {
	store  *metadata.Store
	lookup *lookup.Service
	engine *recommend.Engine
	source *source.FileSource
}

func buildMetadataConfig(cfg *config.Config) *metadata.Config {
	t := cfg.Recommend.Thresholds
	return &metadata.Config{
		Thresholds: metadata.Thresholds{
			HiddenGemMinOriginality: t.HiddenGemMinOriginality,
			HiddenGemMaxVotes:       t.HiddenGemMaxVotes,
			ClassicMinLikes:         t.ClassicMinLikes,
			RisingMinOriginality:    t.RisingMinOriginality,
			RisingMinVotes:          t.RisingMinVotes,
			RisingMaxVotes:          t.RisingMaxVotes,
		},
	}
}

func buildLookupConfig(cfg *config.Config) *lookup.Config {
	return &lookup.Config{CacheCapacity: cfg.Lookup.CacheCapacity}
}

func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		OverFetchFactor: r.OverFetchFactor,
		Limits: recommend.LimitsConfig{
			DefaultLimit: r.DefaultLimit,
			MaxLimit:     r.MaxLimit,
			MaxWeeks:     r.MaxWeeks,
			MaxDailyGoal: r.MaxDailyGoal,
		},
	}
}

func buildReloadConfig(cfg *config.Config) services.ReloadServiceConfig {
	s := cfg.Source
	return services.ReloadServiceConfig{
		WatchInterval:   s.WatchInterval,
		ReloadOnChange:  s.ReloadOnChange,
		LoadTimeout:     s.LoadTimeout,
		BreakerFailures: s.BreakerFailures,
		BreakerTimeout:  s.BreakerTimeout,
	}
}

func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}

// initComponents builds the store, lookup service, engine and file source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initComponents(cfg *config.Config, logger zerolog.Logger) (*components, error) {
	store, err := metadata.NewStore(buildMetadataConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("metadata store: %w", err)
	}
	svc, err := lookup.NewService(store, buildLookupConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("lookup service: %w", err)
	}
	engine, err := recommend.NewEngine(svc, buildRecommendConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}

	format, err := source.ParseFormat(cfg.Source.Format)
	if err != nil {
		return nil, err
	}
	src, err := source.NewFileSource(cfg.Source.Path, format)
	if err != nil {
		return nil, fmt.Errorf("problem source: %w", err)
	}

	return &components{store: store, lookup: svc, engine: engine, source: src}, nil
}

// initialLoad loads the table once before serving. Failure is not fatal:
// the server starts unready and the reload service retries.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initialLoad(ctx context.Context, c *components, cfg *config.Config, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Source.LoadTimeout)
	defer cancel()

	if err := c.lookup.Reload(ctx, c.source); err != nil {
		logger.Warn().Err(err).Str("source", c.source.String()).
			Msg("Initial problem table load failed; serving unready until a reload succeeds")
		return
	}
	stats := c.store.Stats()
	logger.Info().Int("rows", stats.Rows).Dur("duration", stats.LoadDuration).Msg("Problem table loaded")
}
