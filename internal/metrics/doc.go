// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package metrics provides Prometheus metrics collection and export.

Collectors are registered with the default registry through promauto and are
served by promhttp at /metrics.

# Available Metrics

Table loads:
  - problem_table_load_duration_seconds (histogram)
  - problem_table_load_errors_total{error_type}
  - problem_table_rows, problem_table_generation (gauges)
  - problem_table_last_success_timestamp

Lookup cache:
  - lookup_cache_hits_total, lookup_cache_misses_total
  - lookup_cache_entries, lookup_cache_evictions_total
  - records_enriched_total{result}

Recommendations:
  - recommendations_served_total{category}
  - study_plans_generated_total{preference}, study_plan_problems

Reload circuit breaker:
  - circuit_breaker_state{name}, circuit_breaker_transitions_total{name,from,to}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
*/
package metrics
