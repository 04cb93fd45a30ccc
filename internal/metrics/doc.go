// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry at package init and are exposed
at /metrics when the HTTP adapter is running:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Metrics:
  - catalog_entries: Entries in the prepared catalog (gauge)
  - catalog_genre_dimensions: Canonical genre slots (gauge)
  - catalog_keyword_dimensions: Canonical keyword slots (gauge)
  - catalog_build_duration_seconds: Preparation time (histogram)
  - catalog_dropped_records_total: Records removed during cleaning (counter)
    Labels: reason (known_bad, duplicate)

Recommendation Metrics:
  - recommend_rank_duration_seconds: Time to score and sort one pool (histogram)
  - recommend_candidate_pool_size: Candidates scored per query (histogram)
  - recommend_queries_total: Name resolutions by outcome (counter)
    Labels: outcome (resolved, not_found, ambiguous)
  - recommend_result_cache_lookups_total: Ranking cache lookups in serve mode (counter)
    Labels: result (hit, miss)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

# Usage

	metrics.RecordCatalogBuild(cat.Len(), len(genres), len(keywords), elapsed)
	metrics.RecordRank(poolSize, time.Since(start))
	metrics.RecordQuery(metrics.OutcomeResolved)
*/
package metrics
