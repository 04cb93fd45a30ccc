// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/metrics"
)

// Resolver maps free-text app name queries to catalog entries.
type Resolver struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewResolver creates a resolver over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(cat *catalog.Catalog, logger zerolog.Logger) *Resolver {
	return &Resolver{
		catalog: cat,
		logger:  logger.With().Str("component", "resolver").Logger(),
	}
}

// Find returns every entry whose name contains query, ignoring case,
// in catalog order.
func (r *Resolver) Find(query string) []*catalog.Entry {
	needle := catalog.Lower(query)
	var matches []*catalog.Entry
	for i := 0; i < r.catalog.Len(); i++ {
		e := r.catalog.At(i)
		if strings.Contains(catalog.Lower(e.Name), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Resolve returns the single entry whose name contains query.
// No match yields *NotFoundError; several yield *AmbiguousQueryError.
func (r *Resolver) Resolve(query string) (*catalog.Entry, error) {
	matches := r.Find(query)

	switch len(matches) {
	case 0:
		metrics.RecordQuery(metrics.OutcomeNotFound)
		r.logger.Debug().Str("query", query).Msg("no match")
		return nil, &NotFoundError{Query: query}
	case 1:
		metrics.RecordQuery(metrics.OutcomeResolved)
		return matches[0], nil
	default:
		metrics.RecordQuery(metrics.OutcomeAmbiguous)
		r.logger.Debug().Str("query", query).Int("matches", len(matches)).Msg("ambiguous query")
		return nil, &AmbiguousQueryError{Query: query, Matches: matches}
	}
}

// ResolveExact returns the entry named exactly query and otherwise falls back
// to Resolve. Both paths count toward the query outcome metric.
func (r *Resolver) ResolveExact(query string) (*catalog.Entry, error) {
	if e, ok := r.catalog.Lookup(query); ok {
		metrics.RecordQuery(metrics.OutcomeResolved)
		return e, nil
	}
	return r.Resolve(query)
}

// Select picks the match at index, as listed by an AmbiguousQueryError.
func Select(matches []*catalog.Entry, index int) (*catalog.Entry, error) {
	if index < 0 || index >= len(matches) {
		return nil, fmt.Errorf("%w: %d is not between 0 and %d", ErrInvalidSelection, index, len(matches)-1)
	}
	return matches[index], nil
}

// SelectString parses raw as an index and calls Select.
func SelectString(matches []*catalog.Entry, raw string) (*catalog.Entry, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, raw)
	}
	return Select(matches, index)
}

// ClampK turns a requested neighbor count into a usable one.
// Anything that is not an integer becomes def; values are then held
// within [lo, hi].
//
//	ClampK("25", 10, 1, 20)  // 20
//	ClampK("abc", 10, 1, 20) // 10
func ClampK(raw string, def, lo, hi int) int {
	k, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		k = def
	}
	if k > hi {
		return hi
	}
	if k < lo {
		return lo
	}
	return k
}

// IsRecoverable reports whether err is a resolution error the user can fix
// by entering a different query or index.
func IsRecoverable(err error) bool {
	var nf *NotFoundError
	var amb *AmbiguousQueryError
	return errors.As(err, &nf) || errors.As(err, &amb) || errors.Is(err, ErrInvalidSelection)
}
