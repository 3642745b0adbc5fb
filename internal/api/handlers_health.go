// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"net/http"
	"time"

	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
)

// LiveStatus is the liveness probe payload.
type LiveStatus struct {
	Alive         bool    `json:"alive"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyStatus is the readiness probe payload.
type ReadyStatus struct {
	Ready bool           `json:"ready"`
	Table metadata.Stats `json:"table"`
}

// HealthLive handles GET /api/v1/health/live. It returns 200 while the
// process is running, whether or not the table is loaded.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Alive:         true,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready. It returns 503 until the
// first successful table load.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	stats := h.store.Stats()
	if !stats.Loaded {
		w.Header().Set("Retry-After", "5")
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Problem table is not loaded yet", ReadyStatus{Ready: false, Table: stats})
		return
	}
	rw.Success(ReadyStatus{Ready: true, Table: stats})
}
