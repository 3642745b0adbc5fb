// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

// Package logging provides zerolog-based structured logging for AlgoPath.
//
// JSON output is the default; console output is available for development.
// Every line of the global logger carries a timestamp and service=algopath.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("rows", n).Msg("Problem table loaded")
//	logging.Err(err).Str("path", path).Msg("Table load failed")
//
//	// Request-scoped logging
//	logging.Ctx(r.Context()).Debug().Str("title", title).Msg("Lookup")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Environment variables are read by the config package and passed to Init.
//
// # Components
//
// Packages take a zerolog.Logger in their constructors and tag it with a
// component field. WithComponent builds such a logger from the global one.
//
// # Supervisor Integration
//
// SlogHandler adapts zerolog to log/slog so the suture supervisor tree can
// log through sutureslog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// # Audit Logging
//
// AuditLogger records administrative actions such as table reloads. Tokens
// and credential-bearing error messages are masked before they are written.
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex and may be reconfigured with
// Init at any time. zerolog.Logger values are safe for concurrent use.
package logging
