// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package recommend builds scored recommendation lists, ranks enriched
// problem records and composes study plans.
//
// # Recommendation Lists
//
// Each list starts from a metadata selector, over-fetches by
// Config.OverFetchFactor, applies an optional topic filter and re-sorts by
// a category score:
//
//   - Hidden gems: 0.5 originality + 0.3 (1 - min(votes/1000, 1)) + 0.2 engagement
//   - Classics: 0.4 min(likes/10000, 1) + 0.4 originality + 0.2 min(votes/5000, 1)
//   - Rising stars: 0.6 originality + 0.4 engagement
//
// # Ranking
//
// Rank orders arbitrary records by one of four composite strategies
// (quality, popularity, hidden_gems, balanced). Normalizing denominators
// are max(observed maximum, 1) over the ranked collection.
//
// # Study Plans
//
// GenerateStudyPlan splits weeks x 7 x daily_goal problems over classics,
// hidden gems, rising stars and the balanced-ranked remainder of the table
// using a quality preference preset, then lays them out day by day in
// category order. DifficultyProgression returns the fixed weekly
// easy/medium/hard targets for a skill level.
//
// # Usage
//
//	engine, err := recommend.NewEngine(lookupSvc, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	gems, err := engine.HiddenGems(recommend.RecommendOptions{Limit: 10, Topics: []string{"graph"}})
//
//	plan, err := engine.GenerateStudyPlan(recommend.StudyPlanRequest{
//	    DurationWeeks: 4,
//	    DailyGoal:     3,
//	    SkillLevel:    recommend.SkillIntermediate,
//	})
//
// # Thread Safety
//
// The engine holds no mutable state. Every call reads one immutable table
// generation and may run concurrently with other calls and with reloads.
package recommend
