// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"net/http"
	"strings"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/recommend"
)

// LookupResult is the payload of a successful lookup.
type LookupResult struct {
	Title    string          `json:"title"`
	Metadata lookup.Metadata `json:"metadata"`
}

// RankResult is the payload of a rank call.
type RankResult struct {
	Strategy recommend.Strategy `json:"strategy"`
	Records  []lookup.Record    `json:"records"`
}

// Lookup handles GET /api/v1/problems/lookup?title=. The title is used as
// given; resolution is exact, then case-insensitive, then by substring.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	title := r.URL.Query().Get("title")
	if strings.TrimSpace(title) == "" {
		rw.ValidationError("title is required", map[string]any{"field": "title", "tag": "required"})
		return
	}
	if !h.store.Loaded() {
		rw.ServiceUnavailable("Problem table is not loaded yet")
		return
	}

	meta, found := h.lookup.Lookup(title)
	if !found {
		logging.Ctx(r.Context()).Debug().Str("title", sanitizeLogValue(title)).Msg("Lookup found no problem")
		rw.NotFound("No problem matches title")
		return
	}
	rw.SuccessWithGeneration(LookupResult{Title: title, Metadata: meta}, h.store.Generation())
}

// Enrich handles POST /api/v1/problems/enrich. Unmatched records get the
// neutral defaults, so this succeeds even before the table is loaded.
func (h *Handler) Enrich(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req EnrichRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}

	records := h.lookup.Enrich(req.Records)
	rw.List(records, len(records))
}

// Filter handles POST /api/v1/problems/filter.
func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FilterRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}

	records := h.lookup.Filter(req.Records, req.Criteria)
	rw.List(records, len(records))
}

// Rank handles POST /api/v1/problems/rank.
func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RankRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}

	strategy := recommend.ParseStrategy(req.Strategy)
	records := h.engine.Rank(req.Records, strategy)
	rw.Success(RankResult{Strategy: strategy, Records: records})
}
