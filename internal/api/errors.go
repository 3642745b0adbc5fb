// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/recommend"
)

// Sentinel errors for request handling.
var (
	// ErrReloadUnavailable indicates no reloader is configured.
	ErrReloadUnavailable = errors.New("table reload is not configured")

	// ErrBodyTooLarge indicates the request body exceeded the limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

// respondServiceError maps domain errors to API errors:
//
//	metadata.ErrNotReady        -> 503 SERVICE_UNAVAILABLE
//	metadata.ErrNotFound        -> 404 NOT_FOUND
//	recommend.ErrInvalidRequest -> 400 VALIDATION_FAILED
//	anything else               -> 500 INTERNAL_ERROR
func respondServiceError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, metadata.ErrNotReady):
		rw.ServiceUnavailable("Problem table is not loaded yet")
	case errors.Is(err, metadata.ErrNotFound):
		rw.NotFound("Problem not found")
	case errors.Is(err, recommend.ErrInvalidRequest):
		rw.ValidationError(strings.TrimPrefix(err.Error(), recommend.ErrInvalidRequest.Error()+": "), nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", sanitizeLogValue(r.URL.Path)).Msg("Request failed")
		rw.InternalError("An internal error occurred")
	}
}

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
