// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package api serves the recommender over HTTP for playrec serve.

The API is read-only. Every handler shares one immutable catalog.Catalog, so
no locking is needed.

# Endpoints

	GET /api/v1/health                         catalog size and dimensions
	GET /api/v1/apps?q=<substring>             every app whose name contains q
	GET /api/v1/apps/similar?name=<name>&k=<k> nearest neighbors of one app
	GET /metrics                               Prometheus metrics

name is matched exactly first and then as a case-insensitive substring. A
substring that matches several apps returns 409 Conflict with the candidate
names in error.details.matches. k follows the same clamping as the
interactive prompt: a missing or non-numeric value means the configured
default, and anything outside [min_k, max_k] is clamped.

With Handler.WithResultCache, rankings are kept in a cache.LRU keyed by the
resolved app name and clamped k.

# Response Format

Every response uses the APIResponse envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
	}

Errors set success to false and fill error.code and error.message.

# Middleware

Global: RequestID, RealIP, AccessLog, Recoverer, CORS. Routes under /api/v1
also get security headers, httprate rate limiting keyed by client IP, and
Prometheus instrumentation.
*/
package api
