// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/playrec/internal/catalog"
)

// FormatRating renders a rating the way the listing shows it: whole values
// keep one decimal ("4.0") and a missing rating is "nan".
func FormatRating(e *catalog.Entry) string {
	if !e.HasRating || math.IsNaN(e.Rating) {
		return "nan"
	}
	s := strconv.FormatFloat(e.Rating, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatNeighbor renders one result as two lines:
//
//	Sudoku Master
//	Genres: Puzzle | Rating: 4.0
func FormatNeighbor(e *catalog.Entry) string {
	return fmt.Sprintf("%s\nGenres: %s | Rating: %s", e.Name, strings.Join(e.Genres, ", "), FormatRating(e))
}

// WriteNeighbors writes every neighbor with FormatNeighbor, one per block.
func WriteNeighbors(w io.Writer, neighbors []Neighbor) error {
	for _, n := range neighbors {
		if _, err := fmt.Fprintln(w, FormatNeighbor(n.Entry)); err != nil {
			return err
		}
	}
	return nil
}
