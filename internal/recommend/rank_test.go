// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"math"
	"testing"

	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
)

func enriched(title string, orig, eng float64, likes, votes int64, adjusted float64) lookup.Record {
	return lookup.Record{
		"title":                    title,
		lookup.FieldOriginality:    orig,
		lookup.FieldEngagement:     eng,
		lookup.FieldLikes:          likes,
		lookup.FieldTotalVotes:     votes,
		lookup.FieldAdjustedAccept: adjusted,
	}
}

func rankedTitles(records []lookup.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = r["title"].(string)
	}
	return out
}

func TestRank_BalancedDominance(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	records := []lookup.Record{
		enriched("B", 0.5, 0.3, 50, 80, 0.2),
		enriched("A", 0.9, 0.8, 100, 120, 0.9),
	}

	out := engine.Rank(records, StrategyBalanced)
	if got := rankedTitles(out); !equalTitles(got, []string{"A", "B"}) {
		t.Errorf("Rank() = %v, want [A B]", got)
	}
	a, _ := out[0][FieldRankScore].(float64)
	b, _ := out[1][FieldRankScore].(float64)
	if a <= b {
		t.Errorf("dominating record should score strictly higher: %v <= %v", a, b)
	}
	// 0.4*0.9 + 0.3*0.8 + 0.2*1 + 0.1*0.9
	if math.Abs(a-0.89) > 1e-4 {
		t.Errorf("A rank_score = %v, want 0.89", a)
	}
	if _, ok := records[0][FieldRankScore]; ok {
		t.Error("input records were mutated")
	}
}

func TestRank_Strategies(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	records := []lookup.Record{
		enriched("popular", 0.6, 0.5, 1000, 2000, 0.5),
		enriched("gem", 0.98, 0.2, 50, 60, 0.5),
		enriched("solid", 0.85, 0.9, 400, 500, 0.5),
	}

	tests := []struct {
		strategy Strategy
		want     []string
	}{
		{StrategyQuality, []string{"solid", "gem", "popular"}},
		{StrategyPopularity, []string{"popular", "solid", "gem"}},
		{StrategyHiddenGems, []string{"gem", "solid", "popular"}},
		{Strategy("no-such-strategy"), []string{"solid", "popular", "gem"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			out := engine.Rank(records, tt.strategy)
			if got := rankedTitles(out); !equalTitles(got, tt.want) {
				t.Errorf("Rank(%s) = %v, want %v", tt.strategy, got, tt.want)
			}
		})
	}
}

func TestRank_ZeroGuardedDenominators(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	if out := engine.Rank(nil, StrategyPopularity); len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}

	out := engine.Rank([]lookup.Record{enriched("zero", 0.5, 0, 0, 0, 0)}, StrategyPopularity)
	score, _ := out[0][FieldRankScore].(float64)
	if math.IsNaN(score) || score != 0 {
		t.Errorf("rank_score = %v, want 0", score)
	}
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	records := []lookup.Record{
		enriched("first", 0.7, 0.5, 10, 10, 0.5),
		enriched("second", 0.7, 0.5, 10, 10, 0.5),
		enriched("third", 0.7, 0.5, 10, 10, 0.5),
	}
	out := engine.Rank(records, StrategyQuality)
	if got := rankedTitles(out); !equalTitles(got, []string{"first", "second", "third"}) {
		t.Errorf("ties should keep input order, got %v", got)
	}
}

func TestRank_EnrichesByTitle(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testRows())
	out := engine.Rank([]lookup.Record{{"title": "Gem Graph"}, {"title": "Two Sum"}}, StrategyQuality)

	if got := rankedTitles(out); !equalTitles(got, []string{"Two Sum", "Gem Graph"}) {
		t.Errorf("Rank() = %v", got)
	}
	if out[0][lookup.FieldMetadataAvailable] != true {
		t.Error("ranked records should carry enrichment fields")
	}
	// 0.7*0.9 + 0.3*(0.6 + 0.3)
	if score, _ := out[0][FieldRankScore].(float64); math.Abs(score-0.9) > 1e-4 {
		t.Errorf("Two Sum rank_score = %v, want 0.9", score)
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"quality", "popularity", "hidden_gems", "balanced"} {
		if got := ParseStrategy(name); string(got) != name {
			t.Errorf("ParseStrategy(%q) = %q", name, got)
		}
	}
	if got := ParseStrategy(""); got != StrategyBalanced {
		t.Errorf("ParseStrategy(\"\") = %q, want balanced", got)
	}
}
