// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package metrics

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Table Load Metrics
	TableLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "problem_table_load_duration_seconds",
			Help:    "Duration of problem table loads including metric computation",
			Buckets: prometheus.DefBuckets,
		},
	)

	TableLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "problem_table_load_errors_total",
			Help: "Total number of failed problem table loads",
		},
		[]string{"error_type"}, // "not_found", "timeout", "canceled", "other"
	)

	TableRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "problem_table_rows",
			Help: "Number of rows in the served problem table",
		},
	)

	TableGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "problem_table_generation",
			Help: "Generation number of the served problem table (0 when unloaded)",
		},
	)

	TableLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "problem_table_last_success_timestamp",
			Help: "Unix timestamp of the last successful table load",
		},
	)

	// Lookup Cache Metrics
	LookupCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lookup_cache_hits_total",
			Help: "Total number of lookup cache hits",
		},
	)

	LookupCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lookup_cache_misses_total",
			Help: "Total number of lookup cache misses",
		},
	)

	LookupCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lookup_cache_entries",
			Help: "Current number of cached lookups",
		},
	)

	LookupCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lookup_cache_evictions_total",
			Help: "Total number of lookup cache capacity evictions",
		},
	)

	RecordsEnriched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_enriched_total",
			Help: "Total number of records passed through enrichment",
		},
		[]string{"result"}, // "matched", "unmatched", "malformed"
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommended problems returned",
		},
		[]string{"category"}, // "hidden_gems", "classics", "rising_stars", "ranked"
	)

	StudyPlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "study_plans_generated_total",
			Help: "Total number of study plans generated",
		},
		[]string{"preference"},
	)

	StudyPlanProblems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "study_plan_problems",
			Help:    "Number of problems placed in generated study plans",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 500},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordTableLoad records a table load attempt.
func RecordTableLoad(duration time.Duration, rows int, err error) {
	TableLoadDuration.Observe(duration.Seconds())
	if err != nil {
		TableLoadErrors.WithLabelValues(loadErrorType(err)).Inc()
		return
	}
	TableRows.Set(float64(rows))
	TableLastSuccess.Set(float64(time.Now().Unix()))
}

func loadErrorType(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "other"
	}
}

// RecordLookup records a lookup cache hit or miss.
func RecordLookup(hit bool) {
	if hit {
		LookupCacheHits.Inc()
	} else {
		LookupCacheMisses.Inc()
	}
}

// RecordEnrichment records enrichment outcomes for one batch.
func RecordEnrichment(matched, unmatched, malformed int) {
	RecordsEnriched.WithLabelValues("matched").Add(float64(matched))
	RecordsEnriched.WithLabelValues("unmatched").Add(float64(unmatched))
	RecordsEnriched.WithLabelValues("malformed").Add(float64(malformed))
}

// RecordRecommendations records recommended items returned for a category.
func RecordRecommendations(category string, count int) {
	RecommendationsServed.WithLabelValues(category).Add(float64(count))
}

// RecordStudyPlan records a generated study plan.
func RecordStudyPlan(preference string, problems int) {
	StudyPlansGenerated.WithLabelValues(preference).Inc()
	StudyPlanProblems.Observe(float64(problems))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCircuitBreakerTransition records a breaker state change. state is
// the numeric value of the new state.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
