// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"context"
	"errors"
	"time"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/middleware"
	"github.com/antonk-nf/algopath2-sub001/internal/recommend"
)

// Reloader reloads the problem table on demand.
type Reloader interface {
	// ReloadNow loads the table and returns the row count of the new
	// generation.
	ReloadNow(ctx context.Context) (int, error)
}

// Handler serves the AlgoPath API.
type Handler struct {
	lookup   *lookup.Service
	store    *metadata.Store
	engine   *recommend.Engine
	reloader Reloader
	perfMon  *middleware.PerformanceMonitor
	audit    *logging.AuditLogger

	reloadTimeout time.Duration
	startTime     time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithReloader enables POST /admin/reload.
func WithReloader(r Reloader, timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		h.reloader = r
		if timeout > 0 {
			h.reloadTimeout = timeout
		}
	}
}

// WithPerformanceMonitor enables GET /admin/performance.
func WithPerformanceMonitor(pm *middleware.PerformanceMonitor) HandlerOption {
	return func(h *Handler) {
		h.perfMon = pm
	}
}

// WithAuditLogger replaces the default audit logger.
func WithAuditLogger(a *logging.AuditLogger) HandlerOption {
	return func(h *Handler) {
		h.audit = a
	}
}

// NewHandler creates the API handler.
func NewHandler(svc *lookup.Service, engine *recommend.Engine, opts ...HandlerOption) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("lookup service is required")
	}
	if engine == nil {
		return nil, errors.New("recommendation engine is required")
	}

	h := &Handler{
		lookup:        svc,
		store:         svc.Store(),
		engine:        engine,
		audit:         logging.NewAuditLogger(),
		reloadTimeout: 2 * time.Minute,
		startTime:     time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}
