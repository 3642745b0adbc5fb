// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package quality

import "sort"

// NeutralOriginality is the originality assigned to rows without votes.
const NeutralOriginality = 0.5

// Engagement weights.
const (
	engagementLikesWeight    = 0.6
	engagementSolutionWeight = 0.3
	engagementVideoWeight    = 0.1
)

// ComputeMetrics returns a copy of raw with every derived metric filled in.
//
// The result has the same length and order as raw. Raw fields are copied
// unchanged and the input slice is never modified. Any metrics already present
// on the input rows are discarded and recomputed.
func ComputeMetrics(raw []Problem) []Problem {
	rows := make([]Problem, len(raw))
	if len(raw) == 0 {
		return rows
	}

	var maxLikes int64
	for i := range raw {
		rows[i] = raw[i]
		rows[i].Metrics = Metrics{}
		if raw[i].Likes > maxLikes {
			maxLikes = raw[i].Likes
		}
	}

	originality := make([]float64, len(rows))
	for i := range rows {
		r := &rows[i]
		r.TotalVotes = r.Likes + r.Dislikes
		r.OriginalityScore = Originality(r.Likes, r.Dislikes)
		r.QualityTier = TierFor(r.OriginalityScore)
		r.AgeCategory = AgeFor(r.TotalVotes)
		r.EngagementScore = Engagement(r.Likes, maxLikes, r.HasSolution, r.HasVideoSolution)
		originality[i] = r.OriginalityScore
	}

	for i, pct := range FractionalRank(originality) {
		rows[i].QualityPercentile = pct
	}

	// Acceptance is ranked within each difficulty group only.
	groups := make(map[Difficulty][]int)
	for i := range rows {
		groups[rows[i].Difficulty] = append(groups[rows[i].Difficulty], i)
	}
	for _, idx := range groups {
		values := make([]float64, len(idx))
		for j, i := range idx {
			values[j] = rows[i].AcceptanceRate
		}
		for j, pct := range FractionalRank(values) {
			rows[idx[j]].DifficultyAdjustedAcceptance = pct
		}
	}

	return rows
}

// Originality returns likes / (likes + dislikes), or NeutralOriginality when
// there are no votes.
func Originality(likes, dislikes int64) float64 {
	total := likes + dislikes
	if total <= 0 {
		return NeutralOriginality
	}
	return float64(likes) / float64(total)
}

// Engagement returns the weighted engagement score for a row. maxLikes is the
// table-wide maximum; when it is zero the likes term contributes nothing.
func Engagement(likes, maxLikes int64, hasSolution, hasVideo bool) float64 {
	score := 0.0
	if maxLikes > 0 && likes > 0 {
		score += engagementLikesWeight * float64(likes) / float64(maxLikes)
	}
	if hasSolution {
		score += engagementSolutionWeight
	}
	if hasVideo {
		score += engagementVideoWeight
	}
	return clamp01(score)
}

// FractionalRank returns the average-method rank of every value divided by
// the number of values. Equal values share the same rank. The largest value
// always has rank 1.
func FractionalRank(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	for start := 0; start < n; {
		end := start
		for end+1 < n && values[order[end+1]] == values[order[start]] {
			end++
		}
		// 1-based positions start+1..end+1 share their mean.
		avg := float64(start+end+2) / 2
		for k := start; k <= end; k++ {
			out[order[k]] = avg / float64(n)
		}
		start = end + 1
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
