// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import "net/http"

// QualitySummary handles GET /api/v1/quality/summary.
func (h *Handler) QualitySummary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	summary, err := h.store.Summary()
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.SuccessWithGeneration(summary, h.store.Generation())
}

// DifficultyReality handles GET /api/v1/quality/difficulty-reality.
func (h *Handler) DifficultyReality(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	report, err := h.store.DifficultyReality()
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.SuccessWithGeneration(report, h.store.Generation())
}
