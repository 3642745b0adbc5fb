// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package config provides centralized configuration management for AlgoPath.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, config.yaml or /etc/algopath/config.yaml), then
environment variables. Only mapped environment variables are read.

# Configuration Structure

  - SourceConfig: problem table path, format, reload polling and breaker
  - LookupConfig: lookup cache capacity
  - RecommendConfig: list limits, plan limits and selector thresholds
  - ServerConfig: HTTP server settings
  - SecurityConfig: rate limiting, CORS and the admin token
  - LoggingConfig: level, format and caller info

# Environment Variables

Problem table (SourceConfig):
  - PROBLEMS_PATH: Table file path (default: data/problems.csv)
  - PROBLEMS_FORMAT: auto, csv, parquet or json (default: auto)
  - PROBLEMS_WATCH_INTERVAL: Poll interval (default: 30s)
  - PROBLEMS_RELOAD_ON_CHANGE: Reload on modification (default: true)
  - PROBLEMS_LOAD_TIMEOUT: Load timeout (default: 2m)
  - PROBLEMS_BREAKER_FAILURES: Failures before the breaker opens (default: 3)
  - PROBLEMS_BREAKER_TIMEOUT: Breaker cool-down (default: 5m)

Lookup (LookupConfig):
  - LOOKUP_CACHE_CAPACITY: Memoized lookups (default: 1000)

Recommendations (RecommendConfig):
  - RECOMMEND_OVER_FETCH_FACTOR: Selector over-fetch multiplier (default: 3)
  - RECOMMEND_DEFAULT_LIMIT / RECOMMEND_MAX_LIMIT: List limits (default: 10 / 100)
  - RECOMMEND_MAX_WEEKS / RECOMMEND_MAX_DAILY_GOAL: Plan limits (default: 52 / 20)
  - HIDDEN_GEM_MIN_ORIGINALITY, HIDDEN_GEM_MAX_VOTES: Hidden gem cut-offs (default: 0.85, 1000)
  - CLASSIC_MIN_LIKES: Interview classic cut-off (default: 5000)
  - RISING_MIN_ORIGINALITY, RISING_MIN_VOTES, RISING_MAX_VOTES: Rising star cut-offs (default: 0.8, 50, 500)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Security (SecurityConfig):
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Per-IP limit (default: 100 / 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - ADMIN_TOKEN: Bearer token for the reload endpoint (default: unset, endpoint open)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller info (default: false)

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
