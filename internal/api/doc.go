// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

/*
Package api provides the HTTP REST API for AlgoPath.

The router is built on go-chi/chi v5. Every endpoint responds with the
standard envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": null,
	  "meta": {"request_id": "...", "timestamp": "...", "generation": 3}
	}

Endpoints under /api/v1:

	GET  /health/live                    liveness probe
	GET  /health/ready                   503 until the problem table is loaded
	GET  /problems/lookup?title=         quality metadata for one title
	POST /problems/enrich                merge metadata onto records
	POST /problems/filter                enrich then filter by Criteria
	POST /problems/rank                  enrich then rank by strategy
	GET  /quality/summary                table-wide statistics
	GET  /quality/difficulty-reality     labelled vs observed difficulty
	GET  /recommendations/hidden-gems    ?limit=&topics=&exclude_paid=&min_originality=&max_total_votes=
	GET  /recommendations/classics       ?limit=&topics=&exclude_paid=&min_likes=
	GET  /recommendations/rising-stars   ?limit=&topics=&exclude_paid=&min_originality=&min_votes=&max_votes=
	POST /study-plans                    multi-week plan (201)
	POST /study-plans/weekly             one-week schedule (201)
	GET  /study-plans/progression        ?skill_level=&weeks=
	GET  /cache/stats                    lookup cache and table statistics
	POST /admin/reload                   reload the table from its source
	GET  /admin/performance              per-endpoint latency report

Prometheus metrics are served at /metrics.

Admin routes require "Authorization: Bearer <token>" when an admin token
is configured. Rate limits are per client IP via go-chi/httprate, with
separate budgets for health probes, plan generation and reloads.

Errors map to status codes as follows: an unloaded table is 503 with
Retry-After, invalid input is 400 VALIDATION_FAILED, an unknown title is
404. Recommendation lists are the exception: they answer 200 with an
empty list before the first load.
*/
package api
