// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 {
		t.Errorf("GenerateRequestID() length = %d, want 36", len(id1))
	}
	if id1 == id2 {
		t.Error("GenerateRequestID() should return unique values")
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", got)
	}
}

func TestCtx_StoredLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("scoped")

	out := buf.String()
	if !strings.Contains(out, "scoped") {
		t.Errorf("missing message: %s", out)
	}
	if !strings.Contains(out, `"request_id":"req-456"`) {
		t.Errorf("missing request_id: %s", out)
	}
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json"})

	Ctx(context.Background()).Info().Msg("global fallback")

	out := buf.String()
	if !strings.Contains(out, "global fallback") {
		t.Errorf("missing message: %s", out)
	}
	if strings.Contains(out, "request_id") {
		t.Errorf("request_id should be absent: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json"})

	logger := WithComponent("recommend")
	logger.Info().Msg("component message")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("missing component: %s", buf.String())
	}
}
