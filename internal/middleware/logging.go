// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at error
// level, client errors at warn and everything else at debug.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func AccessLog(logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "http").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			var event *zerolog.Event
			switch {
			case sw.status >= http.StatusInternalServerError:
				event = logger.Error()
			case sw.status >= http.StatusBadRequest:
				event = logger.Warn()
			default:
				event = logger.Debug()
			}

			if id := logging.RequestIDFromContext(r.Context()); id != "" {
				event = event.Str("request_id", id)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", sw.status).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("Request handled")
		})
	}
}
