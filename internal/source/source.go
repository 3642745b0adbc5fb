// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package source provides the table sources the metadata store loads from.
//
// A Source returns the raw problem rows of one table snapshot. Derived
// metrics are never read from a source; the metadata store computes them
// after every load.
package source

import (
	"context"
	"errors"
	"strings"

	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// ErrUnavailable is returned when a source cannot be opened or read.
var ErrUnavailable = errors.New("source unavailable")

// Source loads one snapshot of the raw problem table.
type Source interface {
	// Load returns the raw rows. Derived metric fields are ignored by callers.
	Load(ctx context.Context) ([]quality.Problem, error)

	// String describes the source for logs.
	String() string
}

// StaticSource serves a fixed in-memory table.
type StaticSource struct {
	Rows []quality.Problem
	Err  error
}

// NewStaticSource creates a source over a copy of rows.
func NewStaticSource(rows []quality.Problem) *StaticSource {
	cp := make([]quality.Problem, len(rows))
	copy(cp, rows)
	return &StaticSource{Rows: cp}
}

// Load returns a copy of the configured rows, or Err when set.
func (s *StaticSource) Load(ctx context.Context) ([]quality.Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]quality.Problem, len(s.Rows))
	copy(out, s.Rows)
	return out, nil
}

// String implements Source.
func (s *StaticSource) String() string {
	return "static"
}

// SplitTopicTags splits a delimited tag string on ',', ';' or '|'. Empty
// and whitespace-only tags are dropped.
func SplitTopicTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if tag := strings.TrimSpace(f); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
