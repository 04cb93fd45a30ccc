// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/metrics"
)

// KnownBadRow is the data row of the Play Store listing whose columns are
// shifted by one (category "1.9", rating 19). It is dropped before anything else.
const KnownBadRow = 10472

// popularityPivot is the rating at which popularity is zero.
const popularityPivot = 3.5

// Options controls catalog preparation.
type Options struct {
	// BadRows are zero-based data row indexes dropped before any other step.
	// A listed row that does not exist is logged as a warning, never fatal.
	BadRows []int
}

// DefaultOptions drops the single known-corrupt row of the Play Store listing.
func DefaultOptions() Options {
	return Options{BadRows: []int{KnownBadRow}}
}

// Builder prepares catalogs from raw listings.
type Builder struct {
	opts   Options
	logger zerolog.Logger
}

// NewBuilder creates a builder.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuilder(opts Options, logger zerolog.Logger) *Builder {
	return &Builder{
		opts:   opts,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Build prepares a catalog with the global logger.
func Build(ctx context.Context, records []RawRecord, opts Options) (*Catalog, error) {
	return NewBuilder(opts, logging.Logger()).Build(ctx, records)
}

// Build cleans the raw records and derives every entry's features.
// It either returns a complete catalog or an error; never a partial catalog.
func (b *Builder) Build(ctx context.Context, records []RawRecord) (*Catalog, error) {
	start := time.Now()

	kept := b.dropBadRows(records)
	kept = b.dedupByName(kept)

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	entries := make([]Entry, 0, len(kept))
	for i := range kept {
		entry, err := b.parseRecord(&kept[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	labelSets := make([][]string, len(entries))
	for i := range entries {
		labelSets[i] = entries[i].Genres
	}
	genres := CanonicalGenres(labelSets)
	for i := range entries {
		entries[i].GenreVector = EncodeGenres(entries[i].Genres, genres)
	}

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	keywordLists := make([][]string, len(entries))
	for i := range entries {
		entries[i].Keywords = ExtractKeywords(entries[i].Name)
		keywordLists[i] = entries[i].Keywords
	}
	keywords := CanonicalKeywords(keywordLists)
	for i := range entries {
		entries[i].KeywordVector = EncodeKeywords(entries[i].Keywords, keywords)
	}

	cat := newCatalog(entries, genres, keywords)

	elapsed := time.Since(start)
	metrics.RecordCatalogBuild(cat.Len(), len(genres), len(keywords), elapsed)

	b.logger.Info().
		Int("raw_records", len(records)).
		Int("entries", cat.Len()).
		Int("genre_dimensions", len(genres)).
		Int("keyword_dimensions", len(keywords)).
		Dur("elapsed", elapsed).
		Msg("catalog prepared")

	return cat, nil
}

// dropBadRows removes the configured corrupt rows, warning about any that are absent.
func (b *Builder) dropBadRows(records []RawRecord) []RawRecord {
	if len(b.opts.BadRows) == 0 {
		return records
	}

	bad := make(map[int]bool, len(b.opts.BadRows))
	for _, row := range b.opts.BadRows {
		bad[row] = false
	}

	kept := make([]RawRecord, 0, len(records))
	for i := range records {
		if _, ok := bad[records[i].Row]; ok {
			bad[records[i].Row] = true
			metrics.RecordDroppedRecord("known_bad")
			b.logger.Debug().
				Int("row", records[i].Row).
				Str("app", records[i].App).
				Msg("dropped known-bad record")
			continue
		}
		kept = append(kept, records[i])
	}

	for _, row := range b.opts.BadRows {
		if !bad[row] {
			b.logger.Warn().
				Int("row", row).
				Msg("known-bad record not present in listing; dataset version may have changed")
		}
	}

	return kept
}

// dedupByName keeps the first record for every app name.
func (b *Builder) dedupByName(records []RawRecord) []RawRecord {
	seen := make(map[string]struct{}, len(records))
	kept := make([]RawRecord, 0, len(records))
	for i := range records {
		if _, dup := seen[records[i].App]; dup {
			metrics.RecordDroppedRecord("duplicate")
			continue
		}
		seen[records[i].App] = struct{}{}
		kept = append(kept, records[i])
	}

	if dropped := len(records) - len(kept); dropped > 0 {
		b.logger.Debug().Int("duplicates", dropped).Msg("removed duplicate app names")
	}
	return kept
}

// parseRecord converts a raw record into an entry without features.
func (b *Builder) parseRecord(rec *RawRecord) (Entry, error) {
	reviews, err := parseReviews(rec.Reviews)
	if err != nil {
		return Entry{}, &LoadError{Row: rec.Row, Op: "parse", Err: fmt.Errorf("column %s: %w", ColumnReviews, err)}
	}

	rating, hasRating := b.parseRating(rec)

	return Entry{
		Name:       rec.App,
		Category:   rec.Category,
		Rating:     rating,
		HasRating:  hasRating,
		Reviews:    reviews,
		Popularity: Popularity(rating, hasRating, reviews),
		Genres:     SplitGenres(rec.Genres),
	}, nil
}

func parseReviews(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid review count %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative review count %d", n)
	}
	return n, nil
}

// parseRating returns the rating and whether it is usable.
// Empty, unparseable and non-finite values count as missing.
func (b *Builder) parseRating(rec *RawRecord) (float64, bool) {
	raw := strings.TrimSpace(rec.Rating)
	if raw == "" {
		return 0, false
	}

	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		if err != nil {
			b.logger.Debug().Int("row", rec.Row).Str("rating", raw).Msg("unparseable rating treated as missing")
		}
		return 0, false
	}
	return r, true
}

// Popularity is the signed, quality-weighted review volume.
//
//	Popularity(4.0, true, 100)  // 50
//	Popularity(3.0, true, 200)  // -100
func Popularity(rating float64, hasRating bool, reviews int64) float64 {
	if !hasRating {
		return 0
	}
	return (rating - popularityPivot) * float64(reviews)
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
