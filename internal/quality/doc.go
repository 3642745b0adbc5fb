// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package quality derives normalized quality signals from raw problem
// engagement statistics.
//
// # Derived Metrics
//
// ComputeMetrics attaches the following fields to every row of a table:
//
//   - TotalVotes: likes + dislikes
//   - OriginalityScore: likes / total votes, 0.5 when a row has no votes
//   - QualityPercentile: fractional rank of OriginalityScore over the table
//   - QualityTier: Poor, Average, Good or Excellent
//   - AgeCategory: New, Growing, Established or Classic (vote volume)
//   - DifficultyAdjustedAcceptance: fractional rank of AcceptanceRate inside
//     the row's difficulty group
//   - EngagementScore: 0.6 normalized likes + 0.3 solution + 0.1 video
//
// The calculation is a pure function of the whole table. Percentiles and the
// engagement normalizer depend on every row, so metrics are always recomputed
// in full and never patched row by row.
//
// # Buckets
//
// Tiers and age categories are closed enumerations backed by ordered
// (upper bound, label) tables. Upper bounds are inclusive. The lowest bucket
// also owns the value 0, so a row with zero votes is New and a row with an
// originality of exactly 0 is Poor.
//
// # Summaries
//
// Summarize reduces a computed table into a Summary with global counts and a
// per-difficulty breakdown keyed by whatever difficulty labels occur in the
// data.
package quality
