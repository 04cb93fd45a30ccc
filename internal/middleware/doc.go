// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package middleware provides the HTTP middleware used by playrec serve.

All middleware has the chi signature func(http.Handler) http.Handler:

  - RequestID: honors or generates X-Request-ID and stores it in the
    request context for logging.Ctx
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge

The router applies them in this order:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests with the matched chi route pattern
(for example /api/v1/apps/similar) so that query strings and unknown paths do
not create new series. Requests that match no route use the "unmatched" label.
*/
package middleware
