// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package metadata holds the loaded problem table and answers title lookups,
filtered selections and difficulty reports against it.

# Lifecycle

A Store starts unloaded. Every read made before the first successful Load
returns ErrNotReady. Load reads a source.Source, runs quality.ComputeMetrics
and quality.Summarize over the full table and publishes the result as a new
generation. A failed Load leaves the previous generation in place; Unload is
the only way back to the unloaded state.

Hooks registered with OnReload run under the load lock right after a
generation is published, so caches keyed on table contents can be cleared
before any later load can start:

	store, _ := metadata.NewStore(metadata.DefaultConfig(), logger)
	store.OnReload(func(gen uint64) { cache.Reset() })
	if err := store.Load(ctx, src); err != nil {
	    // errors.Is(err, metadata.ErrSourceUnavailable)
	}

# Lookup

Lookup tries, in order:

 1. the exact title
 2. a case-insensitive exact match
 3. rows whose lower-cased title contains the lower-cased query, picking the
    highest originality and the first row in table order on ties

# Selectors

HiddenGems, InterviewClassics and RisingStars are Select calls with fixed
predicates and sort keys (see Thresholds). Each result carries a one-line
justification built from the row's own values.
*/
package metadata
