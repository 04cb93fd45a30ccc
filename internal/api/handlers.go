// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playrec/internal/cache"
	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/config"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/metrics"
	"github.com/tomtom215/playrec/internal/recommend"
	"github.com/tomtom215/playrec/internal/validation"
)

// Handler serves the recommendation endpoints.
type Handler struct {
	catalog  *catalog.Catalog
	resolver *recommend.Resolver
	ranker   *recommend.Ranker
	query    config.QueryConfig
	results  *cache.LRU[[]recommend.Neighbor]
	logger   zerolog.Logger
}

// NewHandler creates a handler over an already built catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(cat *catalog.Catalog, resolver *recommend.Resolver, ranker *recommend.Ranker, query config.QueryConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		resolver: resolver,
		ranker:   ranker,
		query:    query,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// WithResultCache makes SimilarApps reuse rankings. The catalog never changes
// after startup, so cached rankings only leave the cache by eviction or TTL.
func (h *Handler) WithResultCache(c *cache.LRU[[]recommend.Neighbor]) *Handler {
	h.results = c
	return h
}

// AppDTO is the JSON form of a catalog entry. Rating is null when the
// listing has none.
type AppDTO struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Rating     *float64 `json:"rating"`
	Reviews    int64    `json:"reviews"`
	Popularity float64  `json:"popularity"`
	Genres     []string `json:"genres"`
	Keywords   []string `json:"keywords"`
}

// NeighborDTO is one ranked recommendation.
type NeighborDTO struct {
	AppDTO
	Distance float64 `json:"distance"`
	Display  string  `json:"display"`
}

// HealthResponse is the payload of GET /api/v1/health.
type HealthResponse struct {
	Status            string `json:"status"`
	Entries           int    `json:"entries"`
	Categories        int    `json:"categories"`
	GenreDimensions   int    `json:"genre_dimensions"`
	KeywordDimensions int    `json:"keyword_dimensions"`
}

// SearchResponse is the payload of GET /api/v1/apps.
type SearchResponse struct {
	Query string   `json:"query"`
	Count int      `json:"count"`
	Apps  []AppDTO `json:"apps"`
}

// SimilarResponse is the payload of GET /api/v1/apps/similar.
type SimilarResponse struct {
	App       AppDTO        `json:"app"`
	K         int           `json:"k"`
	Neighbors []NeighborDTO `json:"neighbors"`
}

// NewAppDTO converts a catalog entry.
func NewAppDTO(e *catalog.Entry) AppDTO {
	dto := AppDTO{
		Name:       e.Name,
		Category:   e.Category,
		Reviews:    e.Reviews,
		Popularity: e.Popularity,
		Genres:     e.Genres,
		Keywords:   e.Keywords,
	}
	if e.HasRating {
		rating := e.Rating
		dto.Rating = &rating
	}
	if dto.Genres == nil {
		dto.Genres = []string{}
	}
	if dto.Keywords == nil {
		dto.Keywords = []string{}
	}
	return dto
}

// NewNeighborDTOs converts ranked neighbors.
func NewNeighborDTOs(neighbors []recommend.Neighbor) []NeighborDTO {
	out := make([]NeighborDTO, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, NeighborDTO{
			AppDTO:   NewAppDTO(n.Entry),
			Distance: n.Distance,
			Display:  recommend.FormatNeighbor(n.Entry),
		})
	}
	return out
}

// Health reports catalog size and vector dimensions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthResponse{
		Status:            "ok",
		Entries:           h.catalog.Len(),
		Categories:        len(h.catalog.Categories()),
		GenreDimensions:   len(h.catalog.Genres()),
		KeywordDimensions: len(h.catalog.Keywords()),
	})
}

// SearchApps lists every app whose name contains q, ignoring case.
func (h *Handler) SearchApps(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseSearchRequest(r)
	if ve := validation.ValidateStruct(&req); ve != nil {
		rw.ValidationError(ve)
		return
	}

	matches := h.resolver.Find(req.Query)
	apps := make([]AppDTO, 0, len(matches))
	for _, e := range matches {
		apps = append(apps, NewAppDTO(e))
	}

	rw.Success(SearchResponse{
		Query: req.Query,
		Count: len(apps),
		Apps:  apps,
	})
}

// SimilarApps ranks the neighbors of one app. An exact name wins over a
// substring match.
func (h *Handler) SimilarApps(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseSimilarRequest(r)
	if ve := validation.ValidateStruct(&req); ve != nil {
		rw.ValidationError(ve)
		return
	}

	entry, err := h.resolver.ResolveExact(req.Name)
	if err != nil {
		h.writeResolveError(rw, r, err)
		return
	}

	k := recommend.ClampK(req.K, h.query.DefaultK, h.query.MinK, h.query.MaxK)
	neighbors := h.rank(entry, k)

	h.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(r.Context())).
		Str("app", entry.Name).
		Int("k", k).
		Int("neighbors", len(neighbors)).
		Msg("Ranked neighbors")

	rw.Success(SimilarResponse{
		App:       NewAppDTO(entry),
		K:         k,
		Neighbors: NewNeighborDTOs(neighbors),
	})
}

func (h *Handler) rank(entry *catalog.Entry, k int) []recommend.Neighbor {
	if h.results == nil {
		return h.ranker.Rank(entry, k)
	}

	key := entry.Name + "\x00" + strconv.Itoa(k)
	if neighbors, ok := h.results.Get(key); ok {
		metrics.RecordResultCache(true)
		return neighbors
	}
	metrics.RecordResultCache(false)

	neighbors := h.ranker.Rank(entry, k)
	h.results.Add(key, neighbors)
	return neighbors
}

func (h *Handler) writeResolveError(rw *ResponseWriter, r *http.Request, err error) {
	var nf *recommend.NotFoundError
	var amb *recommend.AmbiguousQueryError

	switch {
	case errors.As(err, &nf):
		rw.NotFound(nf.Error())
	case errors.As(err, &amb):
		names := make([]string, 0, len(amb.Matches))
		for _, m := range amb.Matches {
			names = append(names, m.Name)
		}
		rw.ErrorWithDetails(http.StatusConflict, ErrCodeAmbiguous, amb.Error(), map[string]interface{}{
			"matches": names,
		})
	default:
		h.logger.Error().Err(err).
			Str("request_id", logging.RequestIDFromContext(r.Context())).
			Msg("Resolve failed")
		rw.InternalError("Failed to resolve app name")
	}
}
