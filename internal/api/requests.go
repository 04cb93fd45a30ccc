// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package api

import "net/http"

// SearchRequest holds the parameters of GET /api/v1/apps.
type SearchRequest struct {
	Query string `query:"q" validate:"required,notblank,max=200"`
}

// SimilarRequest holds the parameters of GET /api/v1/apps/similar.
// K stays a string so that bad values fall back to the default instead of
// failing the request.
type SimilarRequest struct {
	Name string `query:"name" validate:"required,notblank,max=200"`
	K    string `query:"k"`
}

func parseSearchRequest(r *http.Request) SearchRequest {
	return SearchRequest{Query: r.URL.Query().Get("q")}
}

func parseSimilarRequest(r *http.Request) SimilarRequest {
	q := r.URL.Query()
	return SimilarRequest{
		Name: q.Get("name"),
		K:    q.Get("k"),
	}
}
