// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/antonk-nf/algopath2-sub001/internal/lookup"
	"github.com/antonk-nf/algopath2-sub001/internal/validation"
)

const (
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes = 8 << 20

	// MaxBatchSize bounds the records of one enrich, filter or rank call.
	MaxBatchSize = 10000

	// DefaultProgressionWeeks is used when the weeks parameter is absent.
	DefaultProgressionWeeks = 8
)

// EnrichRequest is the body of POST /problems/enrich.
type EnrichRequest struct {
	Records []lookup.Record `json:"records" validate:"required,max=10000"`
}

// FilterRequest is the body of POST /problems/filter.
type FilterRequest struct {
	Records  []lookup.Record `json:"records" validate:"required,max=10000"`
	Criteria lookup.Criteria `json:"criteria"`
}

// RankRequest is the body of POST /problems/rank. Unknown strategies rank
// as balanced.
type RankRequest struct {
	Records  []lookup.Record `json:"records" validate:"required,max=10000"`
	Strategy string          `json:"strategy,omitempty"`
}

// decodeJSON reads a bounded JSON body into v and validates it. It writes
// the error response itself and returns false on failure.
func decodeJSON(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer func() { _ = body.Close() }()

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, ErrBodyTooLarge.Error())
		case errors.Is(err, io.EOF):
			rw.BadRequest("Request body is required")
		default:
			rw.BadRequest("Invalid JSON body: " + err.Error())
		}
		return false
	}
	if dec.More() {
		rw.BadRequest("Request body must contain a single JSON object")
		return false
	}

	return validateRequest(rw, v)
}

// validateRequest validates v with the shared validator and writes a
// VALIDATION_FAILED response on failure.
func validateRequest(rw *ResponseWriter, v any) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// queryFloatPtr parses an optional float query parameter. Absent yields nil.
func queryFloatPtr(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return &v, nil
}

// queryInt64Ptr parses an optional integer query parameter. Absent yields nil.
func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, raw)
	}
	return v, nil
}

// queryList collects a list parameter given either repeated or
// comma-separated. Blank items are dropped.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
