// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package main is the entry point for the AlgoPath server.

AlgoPath loads a table of coding problems with community votes, derives
quality metrics (originality, engagement, tiers, age categories), and
serves lookups, enrichment, curated recommendations and study plans over a
REST API.

# Application Architecture

	RootSupervisor ("algopath")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService (file polling, circuit breaker)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: Koanf v2 with defaults, YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Domain: metadata.Store, lookup.Service, recommend.Engine
 4. Source: DuckDB-backed file reader for CSV, Parquet or JSON
 5. Initial load: non-fatal; the server reports unready until it succeeds
 6. HTTP: handlers, middleware and router
 7. Supervisor tree: suture v4

# Configuration

See package config for every variable. The common ones:

	PROBLEMS_PATH=data/problems.csv
	PROBLEMS_RELOAD_ON_CHANGE=true
	HTTP_PORT=8080
	ADMIN_TOKEN=<token>          # protects /api/v1/admin/*
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains open
requests for up to HTTP_SHUTDOWN_TIMEOUT and the reload service stops
polling.

# Example

	export PROBLEMS_PATH=/data/problems.parquet
	export ADMIN_TOKEN=$(openssl rand -hex 32)
	./algopath

	curl 'localhost:8080/api/v1/problems/lookup?title=Two%20Sum'
	curl -X POST -H "Authorization: Bearer $ADMIN_TOKEN" localhost:8080/api/v1/admin/reload
*/
package main
