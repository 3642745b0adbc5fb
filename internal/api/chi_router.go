// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/middleware"
)

// RouterConfig configures the HTTP router.
type RouterConfig struct {
	Middleware *ChiMiddlewareConfig

	// AdminToken protects the admin routes. Empty leaves them open.
	AdminToken string

	// RequestTimeout bounds request handling. Zero disables the timeout.
	RequestTimeout time.Duration
}

// Router builds the chi route tree.
type Router struct {
	handler       *Handler
	config        *RouterConfig
	chiMiddleware *ChiMiddleware
	logger        zerolog.Logger
}

// NewRouter creates a router for the handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRouter(handler *Handler, cfg *RouterConfig, logger zerolog.Logger) *Router {
	if cfg == nil {
		cfg = &RouterConfig{}
	}
	return &Router{
		handler:       handler,
		config:        cfg,
		chiMiddleware: NewChiMiddleware(cfg.Middleware),
		logger:        logger,
	}
}

// SetupChi configures all routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(router.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		if h.perfMon != nil {
			r.Use(h.perfMon.Middleware)
		}
		if router.config.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.config.RequestTimeout))
		}
		r.Use(middleware.Compression)

		r.Route("/api/v1", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimit())

				r.Route("/problems", func(r chi.Router) {
					r.Get("/lookup", h.Lookup)
					r.Post("/enrich", h.Enrich)
					r.Post("/filter", h.Filter)
					r.Post("/rank", h.Rank)
				})

				r.Route("/quality", func(r chi.Router) {
					r.Get("/summary", h.QualitySummary)
					r.Get("/difficulty-reality", h.DifficultyReality)
				})

				r.Route("/recommendations", func(r chi.Router) {
					r.Get("/hidden-gems", h.HiddenGems)
					r.Get("/classics", h.Classics)
					r.Get("/rising-stars", h.RisingStars)
				})

				r.Get("/study-plans/progression", h.Progression)
				r.Get("/cache/stats", h.CacheStats)
			})

			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimitCustom(RateLimitPlans))
				r.Post("/study-plans", h.StudyPlan)
				r.Post("/study-plans/weekly", h.WeeklySchedule)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireAdminToken(router.config.AdminToken, h.audit))
				r.With(router.chiMiddleware.RateLimitCustom(RateLimitAdmin)).Post("/reload", h.Reload)
				r.Get("/performance", h.Performance)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
