// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package lookup

import (
	"encoding/json"
	"testing"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int64) *int64       { return &v }

func TestEnrich_MatchedUnmatchedMalformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)

	input := []Record{
		{"title": "Two Sum", "company": "Acme"},
		{"title": "Unknown Problem"},
		{"name": "no title here"},
		{"title": "   "},
	}
	out := svc.Enrich(input)

	if len(out) != len(input) {
		t.Fatalf("expected %d records, got %d", len(input), len(out))
	}

	matched := out[0]
	if matched["title"] != "Two Sum" || matched["company"] != "Acme" {
		t.Errorf("caller fields lost: %v", matched)
	}
	if matched[FieldMetadataAvailable] != true {
		t.Error("matched record should have metadata_available=true")
	}
	if matched[FieldOriginality] != 0.9 {
		t.Errorf("originality = %v, want 0.9", matched[FieldOriginality])
	}

	unmatched := out[1]
	if unmatched[FieldMetadataAvailable] != false {
		t.Error("unmatched record should have metadata_available=false")
	}
	want := map[string]any{
		FieldLikes:       int64(0),
		FieldDislikes:    int64(0),
		FieldOriginality: 0.5,
		FieldTotalVotes:  int64(0),
		FieldPercentile:  0.5,
		FieldTier:        "Unknown",
		FieldAge:         "Unknown",
		FieldEngagement:  0.0,
		FieldHasSolution: false,
		FieldHasVideo:    false,
		FieldPaidOnly:    false,
	}
	for k, v := range want {
		if unmatched[k] != v {
			t.Errorf("default %s = %v (%T), want %v (%T)", k, unmatched[k], unmatched[k], v, v)
		}
	}

	if len(out[2]) != 1 || out[2]["name"] != "no title here" {
		t.Errorf("malformed record should be returned unmodified, got %v", out[2])
	}
	if _, ok := out[3][FieldMetadataAvailable]; ok {
		t.Error("blank title should be treated as malformed")
	}

	if _, ok := input[0][FieldOriginality]; ok {
		t.Error("input record was mutated")
	}
}

func TestEnrich_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)
	if out := svc.Enrich(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}

func TestEnrich_NotLoadedUsesDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, false)
	out := svc.Enrich([]Record{{"title": "Two Sum"}})
	if out[0][FieldMetadataAvailable] != false {
		t.Error("records enriched before load should use defaults")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)
	records := []Record{
		{"title": "Two Sum"},
		{"title": "Hidden Gem"},
		{"title": "Paid Gem"},
		{"title": "Controversial"},
		{"title": "Not In Table"},
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no criteria", Criteria{}, []string{"Two Sum", "Hidden Gem", "Paid Gem", "Controversial", "Not In Table"}},
		{"min originality", Criteria{MinOriginality: ptrFloat(0.9)}, []string{"Two Sum", "Hidden Gem", "Paid Gem"}},
		{"max originality", Criteria{MaxOriginality: ptrFloat(0.5)}, []string{"Controversial", "Not In Table"}},
		{"min likes", Criteria{MinLikes: ptrInt(100)}, []string{"Two Sum", "Hidden Gem", "Controversial"}},
		{"max votes", Criteria{MaxTotalVotes: ptrInt(200)}, []string{"Hidden Gem", "Paid Gem", "Not In Table"}},
		{"tiers case insensitive", Criteria{QualityTiers: []string{"excellent"}}, []string{"Hidden Gem", "Paid Gem"}},
		{"age", Criteria{AgeCategories: []string{"Classic"}}, []string{"Two Sum"}},
		{"exclude paid", Criteria{ExcludePaid: true, MinOriginality: ptrFloat(0.9)}, []string{"Two Sum", "Hidden Gem"}},
		{"require solution", Criteria{RequireSolution: true}, []string{"Two Sum", "Hidden Gem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(records, tt.criteria)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() returned %d records, want %d: %v", len(got), len(tt.want), got)
			}
			for i, title := range tt.want {
				if got[i]["title"] != title {
					t.Errorf("record %d = %v, want %q", i, got[i]["title"], title)
				}
			}
		})
	}
}

func TestFilter_UsesExistingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, false)
	records := []Record{
		{"title": "a", FieldOriginality: json.Number("0.95"), FieldPaidOnly: false},
		{"title": "b", FieldOriginality: 0.4, FieldPaidOnly: true},
	}

	got := svc.Filter(records, Criteria{MinOriginality: ptrFloat(0.9)})
	if len(got) != 1 || got[0]["title"] != "a" {
		t.Errorf("unexpected result %v", got)
	}
	if svc.Stats().Misses != 0 {
		t.Error("records with quality fields should not be re-enriched")
	}
}

func TestCriteria_IsZero(t *testing.T) {
	t.Parallel()

	if !(&Criteria{}).IsZero() {
		t.Error("empty criteria should be zero")
	}
	if (&Criteria{ExcludePaid: true}).IsZero() {
		t.Error("ExcludePaid criteria should not be zero")
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	for _, v := range []any{1, int64(1), 1.0, float32(1), json.Number("1")} {
		if f, ok := Float(v); !ok || f != 1 {
			t.Errorf("Float(%T) = %v, %v", v, f, ok)
		}
	}
	if _, ok := Float("1"); ok {
		t.Error("strings are not numeric values")
	}
}
