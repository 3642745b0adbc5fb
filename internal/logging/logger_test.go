// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// withGlobal swaps the global logger for the duration of a test.
func withGlobal(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Caller {
		t.Error("Caller should default to false")
	}
	if cfg.Output == nil {
		t.Error("Output should default to stderr")
	}
}

func TestInit_JSON(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json"})

	Info().Int("rows", 42).Msg("Problem table loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["message"] != "Problem table loaded" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["service"] != ServiceName {
		t.Errorf("service = %v, want %s", entry["service"], ServiceName)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("missing time field")
	}
	if entry["rows"] != float64(42) {
		t.Errorf("rows = %v, want 42", entry["rows"])
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := withGlobal(t, Config{Level: "warn", Format: "json"})

	Debug().Msg("debug hidden")
	Info().Msg("info hidden")
	Warn().Msg("warn shown")
	Error().Msg("error shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %s", out)
	}
	if !strings.Contains(out, "warn shown") || !strings.Contains(out, "error shown") {
		t.Errorf("missing warn/error output: %s", out)
	}
}

func TestInit_Console(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "console"})

	Info().Msg("console message")

	out := buf.String()
	if !strings.Contains(out, "console message") {
		t.Errorf("missing message: %s", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console output should not be JSON: %s", out)
	}
}

func TestInit_Caller(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json", Caller: true})

	Info().Msg("with caller")

	if !strings.Contains(buf.String(), `"caller"`) {
		t.Errorf("missing caller field: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWith(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json"})

	child := With().Str("component", "metadata").Logger()
	child.Info().Msg("child message")

	if !strings.Contains(buf.String(), `"component":"metadata"`) {
		t.Errorf("missing component field: %s", buf.String())
	}
}

func TestErr(t *testing.T) {
	buf := withGlobal(t, Config{Level: "info", Format: "json"})

	Err(errors.New("table missing")).Msg("Load failed")

	out := buf.String()
	if !strings.Contains(out, "table missing") {
		t.Errorf("missing error text: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("Err should log at error level: %s", out)
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Str("key", "value").Msg("test")

	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
