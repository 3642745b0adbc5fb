// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/recommend"
)

// recommender is one of the engine's list methods.
type recommender func(opts recommend.RecommendOptions) ([]recommend.Recommendation, error)

// ProgressionResult is the payload of the progression endpoint.
type ProgressionResult struct {
	SkillLevel recommend.SkillLevel        `json:"skill_level"`
	Weeks      []recommend.WeekProgression `json:"weeks"`
}

// HiddenGems handles GET /api/v1/recommendations/hidden-gems.
func (h *Handler) HiddenGems(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, h.engine.HiddenGems)
}

// Classics handles GET /api/v1/recommendations/classics.
func (h *Handler) Classics(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, h.engine.Classics)
}

// RisingStars handles GET /api/v1/recommendations/rising-stars.
func (h *Handler) RisingStars(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, h.engine.RisingStars)
}

// serveRecommendations parses limit, topics, exclude_paid and the threshold
// overrides and writes the list. An unloaded table yields an empty list
// rather than an error.
func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, fn recommender) {
	rw := NewResponseWriter(w, r)

	opts, err := recommendOptions(r)
	if err != nil {
		rw.ValidationError(err.Error(), nil)
		return
	}
	if !validateRequest(rw, &opts) {
		return
	}

	recs, err := fn(opts)
	if err != nil {
		if !errors.Is(err, metadata.ErrNotReady) {
			respondServiceError(rw, r, err)
			return
		}
		logging.Ctx(r.Context()).Debug().Msg("Recommendations requested before table load")
	}
	rw.List(recs, len(recs))
}

func recommendOptions(r *http.Request) (recommend.RecommendOptions, error) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return recommend.RecommendOptions{}, err
	}
	excludePaid, err := queryBool(r, "exclude_paid")
	if err != nil {
		return recommend.RecommendOptions{}, err
	}
	opts := recommend.RecommendOptions{
		Limit:       limit,
		Topics:      queryList(r, "topics"),
		ExcludePaid: excludePaid,
	}
	if opts.MinOriginality, err = queryFloatPtr(r, "min_originality"); err != nil {
		return recommend.RecommendOptions{}, err
	}
	for _, q := range []struct {
		name string
		dst  **int64
	}{
		{"max_total_votes", &opts.MaxTotalVotes},
		{"min_likes", &opts.MinLikes},
		{"min_votes", &opts.MinVotes},
		{"max_votes", &opts.MaxVotes},
	} {
		if *q.dst, err = queryInt64Ptr(r, q.name); err != nil {
			return recommend.RecommendOptions{}, err
		}
	}
	return opts, nil
}

// StudyPlan handles POST /api/v1/study-plans.
func (h *Handler) StudyPlan(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req recommend.StudyPlanRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}

	plan, err := h.engine.GenerateStudyPlan(req)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Created(plan)
}

// WeeklySchedule handles POST /api/v1/study-plans/weekly.
func (h *Handler) WeeklySchedule(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req recommend.WeeklyScheduleRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}

	schedule, err := h.engine.GenerateWeeklySchedule(req)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Created(schedule)
}

// Progression handles GET /api/v1/study-plans/progression. Unknown skill
// levels fall back to intermediate.
func (h *Handler) Progression(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	weeks, err := queryInt(r, "weeks", DefaultProgressionWeeks)
	if err != nil {
		rw.ValidationError(err.Error(), nil)
		return
	}
	maxWeeks := h.engine.Config().Limits.MaxWeeks
	if weeks < 1 || weeks > maxWeeks {
		rw.ValidationError(fmt.Sprintf("weeks must be between 1 and %d, got %d", maxWeeks, weeks), nil)
		return
	}

	skill := recommend.NormalizeSkill(recommend.SkillLevel(r.URL.Query().Get("skill_level")))
	rw.Success(ProgressionResult{
		SkillLevel: skill,
		Weeks:      recommend.DifficultyProgression(skill, weeks),
	})
}
