// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/metrics"
)

// Neighbor is one ranked candidate. Distance is computed for the query that
// produced it and is never stored on the entry.
type Neighbor struct {
	Entry    *catalog.Entry
	Distance float64
}

// Ranker finds the nearest same-category neighbors of an entry.
// It only reads the catalog and is safe for concurrent use.
type Ranker struct {
	catalog *catalog.Catalog
	weights Weights
	logger  zerolog.Logger
}

// NewRanker creates a ranker over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRanker(cat *catalog.Catalog, weights Weights, logger zerolog.Logger) *Ranker {
	return &Ranker{
		catalog: cat,
		weights: weights,
		logger:  logger.With().Str("component", "ranker").Logger(),
	}
}

// Rank returns the k nearest neighbors of query with equal weighting.
func Rank(query *catalog.Entry, cat *catalog.Catalog, k int) []Neighbor {
	return NewRanker(cat, DefaultWeights(), logging.Logger()).Rank(query, k)
}

// Rank scores every other entry of the query's category, sorts by distance
// ascending then popularity descending, and returns the first k.
// A pool smaller than k is returned whole; k <= 0 returns nothing.
func (r *Ranker) Rank(query *catalog.Entry, k int) []Neighbor {
	if k <= 0 || query == nil {
		return nil
	}

	start := time.Now()
	pool := r.candidates(query)

	scored := make([]Neighbor, len(pool))
	for i, e := range pool {
		scored[i] = Neighbor{
			Entry:    e,
			Distance: WeightedSimilarity(query, e, r.weights),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Distance != scored[j].Distance {
			return scored[i].Distance < scored[j].Distance
		}
		return scored[i].Entry.Popularity > scored[j].Entry.Popularity
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	elapsed := time.Since(start)
	metrics.RecordRank(len(pool), elapsed)
	r.logger.Debug().
		Str("app", query.Name).
		Str("category", query.Category).
		Int("pool", len(pool)).
		Int("returned", len(scored)).
		Dur("elapsed", elapsed).
		Msg("ranked neighbors")

	return scored
}

// candidates is the query's category without the query itself, one entry per name.
func (r *Ranker) candidates(query *catalog.Entry) []*catalog.Entry {
	inCategory := r.catalog.InCategory(query.Category)
	seen := make(map[string]struct{}, len(inCategory))
	pool := make([]*catalog.Entry, 0, len(inCategory))
	for _, e := range inCategory {
		if e.Name == query.Name {
			continue
		}
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		pool = append(pool, e)
	}
	return pool
}
