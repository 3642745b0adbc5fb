// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package middleware provides HTTP middleware for the AlgoPath API.
//
// Every middleware has the chi signature func(http.Handler) http.Handler:
//
//   - RequestID: assigns X-Request-ID and stores it in the logging context
//   - AccessLog: one structured log line per request
//   - PrometheusMetrics: request count, latency and in-flight gauge, labelled
//     by chi route pattern
//   - PerformanceMonitor.Middleware: sliding-window latency percentiles and
//     slow-request warnings
//   - Compression: gzip for clients that accept it
//
// Typical ordering in the router:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.AccessLog(logger))
//	r.Use(middleware.PrometheusMetrics)
//	r.Use(monitor.Middleware)
//	r.Use(middleware.Compression)
//
// Route patterns are only known once chi has routed the request, so the
// metrics middlewares read the pattern after calling the next handler.
package middleware
