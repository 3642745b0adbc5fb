// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package services provides suture.Service wrappers for AlgoPath components.

HTTPServerService translates http.Server's blocking ListenAndServe into
suture's context-aware Serve and drains connections on shutdown.

ReloadService keeps the problem table current. It polls the source
file's modification time and reloads through lookup.Service, which clears
the lookup cache with every published generation. All loads, including
manual ones from POST /api/v1/admin/reload, share one sony/gobreaker
circuit breaker: after BreakerFailures consecutive failures loads are
rejected with gobreaker.ErrOpenState until BreakerTimeout elapses. State
changes are exported as circuit_breaker_state and
circuit_breaker_transitions_total.
*/
package services
