// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/config"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Source: config.SourceConfig{
			Path:            path,
			Format:          "auto",
			WatchInterval:   time.Minute,
			ReloadOnChange:  true,
			LoadTimeout:     30 * time.Second,
			BreakerFailures: 4,
			BreakerTimeout:  time.Minute,
		},
		Lookup: config.LookupConfig{CacheCapacity: 64},
		Recommend: config.RecommendConfig{
			OverFetchFactor: 2,
			DefaultLimit:    5,
			MaxLimit:        50,
			MaxWeeks:        12,
			MaxDailyGoal:    6,
			Thresholds: config.ThresholdsConfig{
				HiddenGemMinOriginality: 0.9,
				HiddenGemMaxVotes:       800,
				ClassicMinLikes:         4000,
				RisingMinOriginality:    0.75,
				RisingMinVotes:          40,
				RisingMaxVotes:          400,
			},
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"https://app.example"},
		},
	}
}

func TestBuildConfigs(t *testing.T) {
	t.Parallel()

	cfg := testConfig("problems.csv")

	meta := buildMetadataConfig(cfg)
	if meta.Thresholds.HiddenGemMaxVotes != 800 || meta.Thresholds.RisingMinOriginality != 0.75 {
		t.Errorf("metadata thresholds = %+v", meta.Thresholds)
	}
	if err := meta.Validate(); err != nil {
		t.Errorf("metadata config invalid: %v", err)
	}

	if got := buildLookupConfig(cfg).CacheCapacity; got != 64 {
		t.Errorf("CacheCapacity = %d, want 64", got)
	}

	rec := buildRecommendConfig(cfg)
	if rec.OverFetchFactor != 2 || rec.Limits.MaxWeeks != 12 || rec.Limits.MaxDailyGoal != 6 {
		t.Errorf("recommend config = %+v", rec)
	}
	if err := rec.Validate(); err != nil {
		t.Errorf("recommend config invalid: %v", err)
	}

	reload := buildReloadConfig(cfg)
	if reload.BreakerFailures != 4 || !reload.ReloadOnChange || reload.WatchInterval != time.Minute {
		t.Errorf("reload config = %+v", reload)
	}

	mw := buildMiddlewareConfig(cfg)
	if mw.RateLimitRequests != 60 || len(mw.CORSAllowedOrigins) != 1 {
		t.Errorf("middleware config = %+v", mw)
	}
}

func TestInitComponents(t *testing.T) {
	t.Parallel()

	comps, err := initComponents(testConfig("data/problems.parquet"), zerolog.Nop())
	if err != nil {
		t.Fatalf("initComponents() error = %v", err)
	}
	if comps.source.Format != source.FormatParquet {
		t.Errorf("format = %q, want parquet", comps.source.Format)
	}
	if comps.engine == nil || comps.lookup.Store() != comps.store {
		t.Error("components not wired together")
	}

	if _, err := initComponents(testConfig("problems.xlsx"), zerolog.Nop()); err == nil {
		t.Error("expected error for undetectable format")
	}
}

func TestInitialLoad_MissingFileIsNotFatal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.csv")
	cfg := testConfig(path)
	comps, err := initComponents(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initComponents() error = %v", err)
	}

	initialLoad(context.Background(), comps, cfg, zerolog.Nop())
	if comps.store.Loaded() {
		t.Error("store should stay unloaded")
	}
}

func TestInitialLoad_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "problems.csv")
	csv := "title,difficulty,likes,dislikes,acceptance_rate,has_solution,has_video_solution,is_paid_only,topic_tags\n" +
		"Two Sum,Easy,9000,1000,49.1,true,false,false,\"Array, Hash Table\"\n" +
		"LRU Cache,Medium,6000,2000,40.0,true,true,false,Design\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(path)
	comps, err := initComponents(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initComponents() error = %v", err)
	}
	initialLoad(context.Background(), comps, cfg, zerolog.Nop())

	if stats := comps.store.Stats(); !stats.Loaded || stats.Rows != 2 {
		t.Errorf("stats = %+v, want 2 loaded rows", stats)
	}
	if _, ok := comps.lookup.Lookup("two sum"); !ok {
		t.Error("lookup after initial load failed")
	}
}
