// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package validation validates API request bodies with go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after first use and is safe for concurrent use. Errors name
// fields by their json tag so messages match what the client sent:
//
//	type RecommendOptions struct {
//	    Limit  int      `json:"limit" validate:"omitempty,gte=0"`
//	    Topics []string `json:"topics" validate:"omitempty,dive,min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&opts); verr != nil {
//	    apiErr := verr.ToAPIError() // Code: VALIDATION_FAILED
//	}
package validation
