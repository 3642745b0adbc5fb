// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/middleware"
)

// recentSamples is the number of request samples in the performance report.
const recentSamples = 20

// CacheStats is the payload of GET /cache/stats.
type CacheStats struct {
	Lookup lookup.Stats   `json:"lookup"`
	Table  metadata.Stats `json:"table"`
}

// ReloadResult is the payload of a successful reload.
type ReloadResult struct {
	Rows       int    `json:"rows"`
	Generation uint64 `json:"generation"`
}

// PerformanceReport is the payload of GET /admin/performance.
type PerformanceReport struct {
	Endpoints []middleware.EndpointStats `json:"endpoints"`
	Recent    []middleware.RequestSample `json:"recent"`
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(CacheStats{
		Lookup: h.lookup.Stats(),
		Table:  h.store.Stats(),
	})
}

// Reload handles POST /api/v1/admin/reload. The previous table keeps
// serving when the reload fails.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ip, ua := r.RemoteAddr, r.UserAgent()

	if h.reloader == nil {
		rw.Error(http.StatusNotImplemented, ErrCodeReloadFailed, ErrReloadUnavailable.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.reloadTimeout)
	defer cancel()

	rows, err := h.reloader.ReloadNow(ctx)
	if err != nil {
		h.audit.LogReload(ip, ua, false, err.Error(), 0)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			rw.ServiceUnavailable("Reload suspended after repeated failures; retry later")
			return
		}
		rw.ErrorWithDetails(http.StatusBadGateway, ErrCodeReloadFailed, "Table reload failed",
			map[string]any{"error": err.Error(), "serving_generation": h.store.Generation()})
		return
	}

	h.audit.LogReload(ip, ua, true, "", rows)
	rw.Success(ReloadResult{Rows: rows, Generation: h.store.Generation()})
}

// Performance handles GET /api/v1/admin/performance.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.perfMon == nil {
		rw.NotFound("Performance monitoring is disabled")
		return
	}
	rw.Success(PerformanceReport{
		Endpoints: h.perfMon.Stats(),
		Recent:    h.perfMon.Recent(recentSamples),
	})
}
