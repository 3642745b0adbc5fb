// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package lookup

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
	"github.com/antonk-nf/algopath2-sub001/internal/source"
)

func testRows() []quality.Problem {
	return []quality.Problem{
		{Title: "Two Sum", Difficulty: quality.DifficultyEasy, Likes: 9000, Dislikes: 1000, AcceptanceRate: 49.1, HasSolution: true},
		{Title: "Hidden Gem", Difficulty: quality.DifficultyHard, Likes: 190, Dislikes: 10, AcceptanceRate: 30.0, HasSolution: true},
		{Title: "Paid Gem", Difficulty: quality.DifficultyMedium, Likes: 95, Dislikes: 5, AcceptanceRate: 55.0, IsPaidOnly: true},
		{Title: "Controversial", Difficulty: quality.DifficultyEasy, Likes: 100, Dislikes: 400, AcceptanceRate: 20.0},
	}
}

func newTestService(t *testing.T, capacity int, load bool) *Service {
	t.Helper()
	store, err := metadata.NewStore(metadata.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc, err := NewService(store, &Config{CacheCapacity: capacity}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if load {
		if err := svc.Reload(context.Background(), source.NewStaticSource(testRows())); err != nil {
			t.Fatalf("Reload: %v", err)
		}
	}
	return svc
}

func TestNewService_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil store")
	}
	store, _ := metadata.NewStore(nil, zerolog.Nop())
	if _, err := NewService(store, &Config{CacheCapacity: 0}, zerolog.Nop()); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestLookup_CachesHitsAndNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)

	meta, ok := svc.Lookup("Two Sum")
	if !ok {
		t.Fatal("expected Two Sum to be found")
	}
	if meta.OriginalityScore != 0.9 || meta.QualityTier != "Good" {
		t.Errorf("unexpected metadata %+v", meta)
	}

	if _, ok := svc.Lookup("Three Sum"); ok {
		t.Error("Three Sum should not be found")
	}

	// Repeat both: served from cache.
	svc.Lookup("Two Sum")
	svc.Lookup("Three Sum")

	st := svc.Stats()
	if st.Hits != 2 || st.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 2/2", st.Hits, st.Misses)
	}
	if st.Size != 2 {
		t.Errorf("size = %d, want 2 (not-found is cached)", st.Size)
	}
	if st.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", st.HitRate)
	}
	if st.Capacity != 10 {
		t.Errorf("capacity = %d, want 10", st.Capacity)
	}
}

func TestLookup_CapacityBound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2, true)
	for _, title := range []string{"Two Sum", "Hidden Gem", "Paid Gem", "nope"} {
		svc.Lookup(title)
	}
	st := svc.Stats()
	if st.Size != 2 {
		t.Errorf("size = %d, want 2", st.Size)
	}
	if st.Evictions != 2 {
		t.Errorf("evictions = %d, want 2", st.Evictions)
	}

	if err := svc.Reload(context.Background(), source.NewStaticSource(testRows())); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if ev := svc.Stats().Evictions; ev != 0 {
		t.Errorf("evictions after reload = %d, want 0", ev)
	}
}

func TestLookup_NotReadyIsNotCached(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, false)
	if _, ok := svc.Lookup("Two Sum"); ok {
		t.Error("lookup before load should not find anything")
	}
	if size := svc.Stats().Size; size != 0 {
		t.Errorf("nothing should be cached before load, size = %d", size)
	}

	if err := svc.Reload(context.Background(), source.NewStaticSource(testRows())); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if _, ok := svc.Lookup("Two Sum"); !ok {
		t.Error("lookup after load should succeed")
	}
}

func TestReload_ClearsCacheAndCounters(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)
	svc.Lookup("Two Sum")
	svc.Lookup("Two Sum")

	updated := testRows()
	updated[0].Likes = 1000
	updated[0].Dislikes = 1000
	if err := svc.Reload(context.Background(), source.NewStaticSource(updated)); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	st := svc.Stats()
	if st.Size != 0 || st.Hits != 0 || st.Misses != 0 {
		t.Errorf("expected empty cache after reload, got %+v", st)
	}
	if st.Generation != 2 {
		t.Errorf("generation = %d, want 2", st.Generation)
	}

	meta, ok := svc.Lookup("Two Sum")
	if !ok || meta.OriginalityScore != 0.5 {
		t.Errorf("expected fresh metadata after reload, got %+v", meta)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 10, true)
	svc.Lookup("Two Sum")
	svc.Reset()

	if st := svc.Stats(); st.Size != 0 || st.Misses != 0 {
		t.Errorf("expected cleared stats, got %+v", st)
	}
}

func TestLookup_ConcurrentWithReload(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 100, true)
	src := source.NewStaticSource(testRows())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, ok := svc.Lookup("Hidden Gem"); !ok {
					t.Error("Hidden Gem should always resolve")
					return
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		if err := svc.Reload(context.Background(), src); err != nil {
			t.Fatalf("Reload: %v", err)
		}
	}
	wg.Wait()
}
