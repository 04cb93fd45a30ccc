// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"math"

	"github.com/tomtom215/playrec/internal/catalog"
)

// Weights scales the genre and keyword halves of the combined distance.
type Weights struct {
	Genre   float64
	Keyword float64
}

// DefaultWeights weights genres and keywords equally.
func DefaultWeights() Weights {
	return Weights{Genre: 1, Keyword: 1}
}

// CosineDistance returns 1 - cos(a, b) for two one-hot vectors of equal length.
// A zero vector on either side has no direction, and its distance is 1.
// The result lies in [0, 1].
func CosineDistance(a, b []uint8) float64 {
	if len(a) != len(b) {
		return 1
	}

	var dot, na, nb int
	for i := range a {
		x, y := int(a[i]), int(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 1
	}

	// Taking a single square root keeps identical vectors at exactly 0.
	d := 1 - float64(dot)/math.Sqrt(float64(na)*float64(nb))
	if d < 0 {
		return 0
	}
	return d
}

// Similarity is the combined genre and keyword cosine distance of two
// entries. Lower is more similar; identical non-empty features give 0.
func Similarity(a, b *catalog.Entry) float64 {
	return WeightedSimilarity(a, b, DefaultWeights())
}

// WeightedSimilarity is Similarity with each half scaled by w.
func WeightedSimilarity(a, b *catalog.Entry, w Weights) float64 {
	return w.Genre*CosineDistance(a.GenreVector, b.GenreVector) +
		w.Keyword*CosineDistance(a.KeywordVector, b.KeywordVector)
}
