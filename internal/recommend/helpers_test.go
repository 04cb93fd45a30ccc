// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"context"
	"testing"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/logging"
)

// fixtureRecords is a small listing with hand-checked distances.
//
// Canonical keywords are [chess free master photo sudoku]; "pro", "racing",
// "car", "editor" and "collage" occur once and are not dimensions.
func fixtureRecords() []catalog.RawRecord {
	return []catalog.RawRecord{
		{Row: 0, App: "Sudoku Free", Category: "GAME", Rating: "4.5", Reviews: "1000", Genres: "Puzzle"},
		{Row: 1, App: "Sudoku Master", Category: "GAME", Rating: "4.0", Reviews: "500", Genres: "Puzzle"},
		{Row: 2, App: "Chess Free", Category: "GAME", Rating: "4.2", Reviews: "300", Genres: "Board"},
		{Row: 3, App: "Chess Master Pro", Category: "GAME", Rating: "3.0", Reviews: "100", Genres: "Board;Brain Games"},
		{Row: 4, App: "Racing Car", Category: "GAME", Rating: "4.5", Reviews: "2000", Genres: "Racing"},
		{Row: 5, App: "Photo Editor", Category: "PHOTOGRAPHY", Rating: "", Reviews: "800", Genres: "Photography"},
		{Row: 6, App: "Photo Collage", Category: "PHOTOGRAPHY", Rating: "3.9", Reviews: "50", Genres: "Photography"},
		{Row: 7, App: "Sudoku Free", Category: "GAME", Rating: "1.0", Reviews: "9", Genres: "Puzzle"},
	}
}

func buildFixture(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.NewBuilder(catalog.Options{}, logging.Nop()).Build(context.Background(), fixtureRecords())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return cat
}

func mustLookup(t *testing.T, cat *catalog.Catalog, name string) *catalog.Entry {
	t.Helper()

	e, ok := cat.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) not found", name)
	}
	return e
}

func names(neighbors []Neighbor) []string {
	out := make([]string, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Entry.Name
	}
	return out
}
