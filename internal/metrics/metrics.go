// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the outcome label of QueriesTotal.
const (
	OutcomeResolved  = "resolved"
	OutcomeNotFound  = "not_found"
	OutcomeAmbiguous = "ambiguous"
)

// Result cache lookup results used as the result label of ResultCacheLookups.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	// Catalog Metrics
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of entries in the prepared catalog",
		},
	)

	CatalogGenreDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_genre_dimensions",
			Help: "Number of canonical genre slots in every genre vector",
		},
	)

	CatalogKeywordDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_keyword_dimensions",
			Help: "Number of canonical keyword slots in every keyword vector",
		},
	)

	CatalogBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_build_duration_seconds",
			Help:    "Time spent preparing the catalog from raw records",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	CatalogDroppedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_dropped_records_total",
			Help: "Total number of raw records removed during cleaning",
		},
		[]string{"reason"}, // "known_bad", "duplicate"
	)

	// Recommendation Metrics
	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rank_duration_seconds",
			Help:    "Time spent scoring and sorting one candidate pool",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RankPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_pool_size",
			Help:    "Number of same-category candidates scored per query",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		},
	)

	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_queries_total",
			Help: "Total number of app name resolutions by outcome",
		},
		[]string{"outcome"},
	)

	ResultCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_result_cache_lookups_total",
			Help: "Neighbor ranking cache lookups in serve mode by result",
		},
		[]string{"result"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordCatalogBuild records the shape of a freshly prepared catalog.
func RecordCatalogBuild(entries, genreDims, keywordDims int, duration time.Duration) {
	CatalogEntries.Set(float64(entries))
	CatalogGenreDimensions.Set(float64(genreDims))
	CatalogKeywordDimensions.Set(float64(keywordDims))
	CatalogBuildDuration.Observe(duration.Seconds())
}

// RecordDroppedRecord counts one record removed during cleaning.
func RecordDroppedRecord(reason string) {
	CatalogDroppedRecords.WithLabelValues(reason).Inc()
}

// RecordRank records one neighbor ranking pass.
func RecordRank(poolSize int, duration time.Duration) {
	RankPoolSize.Observe(float64(poolSize))
	RankDuration.Observe(duration.Seconds())
}

// RecordQuery counts one name resolution.
func RecordQuery(outcome string) {
	QueriesTotal.WithLabelValues(outcome).Inc()
}

// RecordResultCache counts one ranking cache lookup.
func RecordResultCache(hit bool) {
	if hit {
		ResultCacheLookups.WithLabelValues(CacheHit).Inc()
		return
	}
	ResultCacheLookups.WithLabelValues(CacheMiss).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
