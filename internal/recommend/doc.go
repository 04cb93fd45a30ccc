// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

// Package recommend ranks apps by content similarity within a category.
//
// # Similarity
//
// Two entries are compared on their one-hot genre and keyword vectors:
//
//	d(a, b) = w_genre * (1 - cos(genres_a, genres_b)) +
//	          w_keyword * (1 - cos(keywords_a, keywords_b))
//
// Both weights default to 1. A zero vector has no direction, so its cosine
// distance to anything is 1. With the default weights d lies in [0, 2] and
// lower means more alike.
//
// # Ranking
//
// Candidates are the other apps of the query's category. They are ordered by
// distance ascending, ties broken by popularity descending, and the first K
// are returned. Nothing is cached: each query scores its pool afresh.
//
// # Resolution
//
// A free-text query is matched case-insensitively as a substring of app
// names. One match resolves; none yields *NotFoundError; several yield
// *AmbiguousQueryError listing the matches, from which Select picks one.
//
// # Usage
//
//	resolver := recommend.NewResolver(cat, logger)
//	ranker := recommend.NewRanker(cat, recommend.DefaultWeights(), logger)
//
//	app, err := resolver.Resolve("sudoku")
//	var amb *recommend.AmbiguousQueryError
//	if errors.As(err, &amb) {
//	    app, err = recommend.Select(amb.Matches, 0)
//	}
//	for _, n := range ranker.Rank(app, 10) {
//	    fmt.Println(recommend.FormatNeighbor(n.Entry))
//	}
//
// # Thread Safety
//
// Resolver and Ranker only read the catalog and may be shared by any number
// of goroutines.
package recommend
