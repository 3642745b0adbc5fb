// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package quality

import (
	"math"
	"sort"
)

// Summary holds table-wide aggregate statistics.
type Summary struct {
	TotalProblems     int                            `json:"total_problems"`
	MeanOriginality   float64                        `json:"mean_originality"`
	MedianOriginality float64                        `json:"median_originality"`
	TierCounts        map[string]int                 `json:"tier_counts"`
	AgeCounts         map[string]int                 `json:"age_counts"`
	TotalLikes        int64                          `json:"total_likes"`
	TotalDislikes     int64                          `json:"total_dislikes"`
	WithSolution      int                            `json:"with_solution"`
	WithVideoSolution int                            `json:"with_video_solution"`
	PaidOnly          int                            `json:"paid_only"`
	ByDifficulty      map[string]DifficultyBreakdown `json:"by_difficulty"`
}

// DifficultyBreakdown summarizes one difficulty group.
type DifficultyBreakdown struct {
	Count           int     `json:"count"`
	MeanOriginality float64 `json:"mean_originality"`

	// StdOriginality is the sample standard deviation. It is nil when the
	// group has fewer than two rows.
	StdOriginality *float64 `json:"std_originality"`

	MeanAcceptanceRate float64        `json:"mean_acceptance_rate"`
	MeanLikes          float64        `json:"mean_likes"`
	TierCounts         map[string]int `json:"tier_counts"`
}

// Summarize aggregates rows that already carry derived metrics. An empty
// input yields a zero summary with empty, non-nil maps.
func Summarize(rows []Problem) Summary {
	s := Summary{
		TotalProblems: len(rows),
		TierCounts:    make(map[string]int),
		AgeCounts:     make(map[string]int),
		ByDifficulty:  make(map[string]DifficultyBreakdown),
	}
	if len(rows) == 0 {
		return s
	}

	originality := make([]float64, 0, len(rows))
	groups := make(map[string][]int)
	var order []string

	for i := range rows {
		r := &rows[i]
		originality = append(originality, r.OriginalityScore)
		s.TierCounts[r.QualityTier.String()]++
		s.AgeCounts[r.AgeCategory.String()]++
		s.TotalLikes += r.Likes
		s.TotalDislikes += r.Dislikes
		if r.HasSolution {
			s.WithSolution++
		}
		if r.HasVideoSolution {
			s.WithVideoSolution++
		}
		if r.IsPaidOnly {
			s.PaidOnly++
		}

		label := string(r.Difficulty)
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], i)
	}

	s.MeanOriginality = Mean(originality)
	s.MedianOriginality = Median(originality)

	for _, label := range order {
		s.ByDifficulty[label] = breakdown(rows, groups[label])
	}
	return s
}

func breakdown(rows []Problem, idx []int) DifficultyBreakdown {
	orig := make([]float64, len(idx))
	acc := make([]float64, len(idx))
	likes := make([]float64, len(idx))
	tiers := make(map[string]int)

	for j, i := range idx {
		orig[j] = rows[i].OriginalityScore
		acc[j] = rows[i].AcceptanceRate
		likes[j] = float64(rows[i].Likes)
		tiers[rows[i].QualityTier.String()]++
	}

	b := DifficultyBreakdown{
		Count:              len(idx),
		MeanOriginality:    Mean(orig),
		MeanAcceptanceRate: Mean(acc),
		MeanLikes:          Mean(likes),
		TierCounts:         tiers,
	}
	if std, ok := SampleStdDev(orig); ok {
		b.StdOriginality = &std
	}
	return b
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the median, or 0 for an empty slice. The input is not
// modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SampleStdDev returns the sample (n-1) standard deviation. ok is false when
// fewer than two values are given.
func SampleStdDev(values []float64) (std float64, ok bool) {
	n := len(values)
	if n < 2 {
		return 0, false
	}
	mean := Mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1)), true
}

// MinMax returns the smallest and largest value, or zeros for an empty slice.
func MinMax(values []float64) (minV, maxV float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minV, maxV = values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}
