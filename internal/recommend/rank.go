// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"maps"
	"sort"

	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// FieldRankScore is the record field Rank adds.
const FieldRankScore = "rank_score"

// rankInput is the subset of quality fields the strategies read.
type rankInput struct {
	originality float64
	engagement  float64
	likes       float64
	votes       float64
	adjusted    float64
}

func inputFromRecord(rec lookup.Record) rankInput {
	get := func(field string) float64 {
		v, _ := lookup.Float(rec[field])
		return v
	}
	return rankInput{
		originality: get(lookup.FieldOriginality),
		engagement:  get(lookup.FieldEngagement),
		likes:       get(lookup.FieldLikes),
		votes:       get(lookup.FieldTotalVotes),
		adjusted:    get(lookup.FieldAdjustedAccept),
	}
}

func inputFromProblem(p *quality.Problem) rankInput {
	return rankInput{
		originality: p.OriginalityScore,
		engagement:  p.EngagementScore,
		likes:       float64(p.Likes),
		votes:       float64(p.TotalVotes),
		adjusted:    p.DifficultyAdjustedAcceptance,
	}
}

// scoreAll applies a strategy to a collection. Normalizing denominators are
// max(observed maximum, 1).
func scoreAll(inputs []rankInput, strategy Strategy) []float64 {
	maxLikes, maxVotes := 1.0, 1.0
	for i := range inputs {
		maxLikes = max(maxLikes, inputs[i].likes)
		maxVotes = max(maxVotes, inputs[i].votes)
	}

	scores := make([]float64, len(inputs))
	for i := range inputs {
		in := &inputs[i]
		switch strategy {
		case StrategyQuality:
			scores[i] = 0.7*in.originality + 0.3*in.engagement
		case StrategyPopularity:
			scores[i] = 0.6*(in.likes/maxLikes) + 0.4*(in.votes/maxVotes)
		case StrategyHiddenGems:
			scores[i] = 0.8*in.originality - 0.2*(in.votes/maxVotes)
		default:
			scores[i] = 0.4*in.originality + 0.3*in.engagement +
				0.2*(in.likes/maxLikes) + 0.1*in.adjusted
		}
	}
	return scores
}

// Rank scores records with the named strategy and returns copies carrying
// rank_score, sorted descending. Records equal in score keep input order.
// When any record lacks quality fields the batch is enriched first; a field
// that is still missing counts as zero.
func (e *Engine) Rank(records []lookup.Record, strategy Strategy) []lookup.Record {
	strategy = ParseStrategy(string(strategy))
	if lookup.NeedsEnrichment(records) {
		records = e.lookup.Enrich(records)
	}

	inputs := make([]rankInput, len(records))
	for i, rec := range records {
		inputs[i] = inputFromRecord(rec)
	}
	scores := scoreAll(inputs, strategy)

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	out := make([]lookup.Record, len(records))
	for pos, idx := range order {
		rec := make(lookup.Record, len(records[idx])+1)
		maps.Copy(rec, records[idx])
		rec[FieldRankScore] = round4(scores[idx])
		out[pos] = rec
	}

	e.logger.Debug().
		Str("strategy", string(strategy)).
		Int("records", len(out)).
		Msg("Records ranked")
	return out
}

// rankProblems orders table rows by a strategy, best first.
func rankProblems(rows []quality.Problem, strategy Strategy) ([]quality.Problem, []float64) {
	inputs := make([]rankInput, len(rows))
	for i := range rows {
		inputs[i] = inputFromProblem(&rows[i])
	}
	scores := scoreAll(inputs, strategy)

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	sortedRows := make([]quality.Problem, len(rows))
	sortedScores := make([]float64, len(rows))
	for pos, idx := range order {
		sortedRows[pos] = rows[idx]
		sortedScores[pos] = scores[idx]
	}
	return sortedRows, sortedScores
}
