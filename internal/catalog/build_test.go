// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/playrec/internal/logging"
)

func sampleRecords() []RawRecord {
	return []RawRecord{
		{Row: 0, App: "My Talking Tom", Category: "GAME", Rating: "4.5", Reviews: "1000", Genres: "Casual"},
		{Row: 1, App: "Talking Tom Gold Run", Category: "GAME", Rating: "4.0", Reviews: "100", Genres: "Action;Action & Adventure"},
		{Row: 2, App: "Life Made WI-Fi Touchscreen Photo Frame", Category: "1.9", Rating: "19", Reviews: "3.0M", Genres: ""},
		{Row: 3, App: "Chess Free", Category: "GAME", Rating: "3.0", Reviews: "200", Genres: "Board"},
		{Row: 4, App: "My Talking Tom", Category: "GAME", Rating: "1.0", Reviews: "5", Genres: "Casual"},
		{Row: 5, App: "Photo Frame", Category: "PHOTOGRAPHY", Rating: "NaN", Reviews: "0", Genres: "Photography"},
	}
}

func buildSample(t *testing.T, opts Options) *Catalog {
	t.Helper()

	cat, err := NewBuilder(opts, logging.Nop()).Build(context.Background(), sampleRecords())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return cat
}

func TestPopularity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating    float64
		hasRating bool
		reviews   int64
		want      float64
	}{
		{rating: 4.0, hasRating: true, reviews: 100, want: 50},
		{rating: 3.0, hasRating: true, reviews: 200, want: -100},
		{rating: 3.5, hasRating: true, reviews: 1000, want: 0},
		{rating: 0, hasRating: false, reviews: 800, want: 0},
	}

	for _, tt := range tests {
		if got := Popularity(tt.rating, tt.hasRating, tt.reviews); got != tt.want {
			t.Errorf("Popularity(%v, %v, %d) = %v, want %v", tt.rating, tt.hasRating, tt.reviews, got, tt.want)
		}
	}
}

func TestBuild_CleansRecords(t *testing.T) {
	t.Parallel()

	cat := buildSample(t, Options{BadRows: []int{2}})

	if cat.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 after dropping the bad row and a duplicate", cat.Len())
	}
	if _, ok := cat.Lookup("Life Made WI-Fi Touchscreen Photo Frame"); ok {
		t.Error("known-bad row survived")
	}

	tom, ok := cat.Lookup("My Talking Tom")
	if !ok {
		t.Fatal("My Talking Tom missing")
	}
	if tom.Rating != 4.5 || tom.Reviews != 1000 {
		t.Errorf("duplicate kept the wrong record: rating %v reviews %d", tom.Rating, tom.Reviews)
	}
	if tom.Popularity != 1000 {
		t.Errorf("Popularity = %v, want 1000", tom.Popularity)
	}
	if !reflect.DeepEqual(tom.Keywords, []string{"talk", "tom"}) {
		t.Errorf("Keywords = %v, want [talk tom]", tom.Keywords)
	}

	frame, _ := cat.Lookup("Photo Frame")
	if frame.HasRating || frame.Popularity != 0 {
		t.Errorf("NaN rating: HasRating = %v Popularity = %v, want missing and 0", frame.HasRating, frame.Popularity)
	}

	names := make([]string, 0, cat.Len())
	for _, e := range cat.Entries() {
		names = append(names, e.Name)
	}
	want := []string{"My Talking Tom", "Talking Tom Gold Run", "Chess Free", "Photo Frame"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("catalog order = %v, want %v", names, want)
	}
}

func TestBuild_Vectors(t *testing.T) {
	t.Parallel()

	cat := buildSample(t, Options{BadRows: []int{2}})

	wantGenres := []string{"Action", "Audio", "Board", "Casual", "Photography", "Video"}
	if !reflect.DeepEqual(cat.Genres(), wantGenres) {
		t.Errorf("Genres() = %v, want %v", cat.Genres(), wantGenres)
	}
	if want := []string{"talk", "tom"}; !reflect.DeepEqual(cat.Keywords(), want) {
		t.Errorf("Keywords() = %v, want %v", cat.Keywords(), want)
	}

	for _, e := range cat.Entries() {
		if len(e.GenreVector) != len(cat.Genres()) {
			t.Errorf("%s: genre vector length %d, want %d", e.Name, len(e.GenreVector), len(cat.Genres()))
		}
		if len(e.KeywordVector) != len(cat.Keywords()) {
			t.Errorf("%s: keyword vector length %d, want %d", e.Name, len(e.KeywordVector), len(cat.Keywords()))
		}
		for _, v := range append(append([]uint8(nil), e.GenreVector...), e.KeywordVector...) {
			if v > 1 {
				t.Errorf("%s: slot value %d outside {0,1}", e.Name, v)
			}
		}
	}

	run, _ := cat.Lookup("Talking Tom Gold Run")
	if want := []uint8{1, 0, 0, 0, 0, 0}; !reflect.DeepEqual(run.GenreVector, want) {
		t.Errorf("Talking Tom Gold Run genre vector = %v, want %v", run.GenreVector, want)
	}
	if want := []uint8{1, 1}; !reflect.DeepEqual(run.KeywordVector, want) {
		t.Errorf("Talking Tom Gold Run keyword vector = %v, want %v", run.KeywordVector, want)
	}
}

func TestBuild_BadRowWarnings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	records := sampleRecords()[:2]
	cat, err := NewBuilder(Options{BadRows: []int{KnownBadRow}}, logging.NewTestLogger(&buf)).Build(context.Background(), records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cat.Len())
	}
	if !strings.Contains(buf.String(), "known-bad record not present") {
		t.Errorf("missing warning for absent bad row, log:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("absent bad row not logged at warn level:\n%s", buf.String())
	}
}

func TestBuild_InvalidReviews(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(Options{}, logging.Nop()).Build(context.Background(), sampleRecords())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Build() error = %v, want *LoadError", err)
	}
	if le.Op != "parse" || le.Row != 2 {
		t.Errorf("LoadError = %+v, want parse error on row 2", le)
	}
	if !strings.Contains(err.Error(), ColumnReviews) {
		t.Errorf("error %q does not name the Reviews column", err)
	}
}

func TestBuild_RatingUsedAsParsed(t *testing.T) {
	t.Parallel()

	records := []RawRecord{
		{Row: 0, App: "Odd Scale", Category: "TOOLS", Rating: "19", Reviews: "10", Genres: "Tools"},
		{Row: 1, App: "Zero Stars", Category: "TOOLS", Rating: "0", Reviews: "10", Genres: "Tools"},
		{Row: 2, App: "Endless", Category: "TOOLS", Rating: "Inf", Reviews: "10", Genres: "Tools"},
	}
	cat, err := NewBuilder(Options{}, logging.Nop()).Build(context.Background(), records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name       string
		hasRating  bool
		rating     float64
		popularity float64
	}{
		{"Odd Scale", true, 19, 155},
		{"Zero Stars", true, 0, -35},
		{"Endless", false, 0, 0},
	}
	for _, tt := range tests {
		e, ok := cat.Lookup(tt.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.name)
		}
		if e.HasRating != tt.hasRating || e.Rating != tt.rating || e.Popularity != tt.popularity {
			t.Errorf("%s: rating %v (has %v) popularity %v, want %v (has %v) popularity %v",
				tt.name, e.Rating, e.HasRating, e.Popularity, tt.rating, tt.hasRating, tt.popularity)
		}
	}
}

func TestBuild_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cat, err := Build(ctx, sampleRecords(), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
	if cat != nil {
		t.Error("Build() returned a partial catalog")
	}
}

func TestBuild_EmptyListing(t *testing.T) {
	t.Parallel()

	cat, err := NewBuilder(Options{}, logging.Nop()).Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 0 || len(cat.Keywords()) != 0 {
		t.Errorf("empty listing: Len %d keywords %v", cat.Len(), cat.Keywords())
	}
	if want := []string{"Audio", "Video"}; !reflect.DeepEqual(cat.Genres(), want) {
		t.Errorf("Genres() = %v, want %v", cat.Genres(), want)
	}
}

func TestCatalog_Indexes(t *testing.T) {
	t.Parallel()

	cat := buildSample(t, Options{BadRows: []int{2}})

	if want := []string{"GAME", "PHOTOGRAPHY"}; !reflect.DeepEqual(cat.Categories(), want) {
		t.Errorf("Categories() = %v, want %v", cat.Categories(), want)
	}

	games := cat.InCategory("GAME")
	if len(games) != 3 || games[0].Name != "My Talking Tom" || games[2].Name != "Chess Free" {
		t.Errorf("InCategory(GAME) = %d entries starting %v", len(games), games)
	}
	if got := cat.InCategory("WEATHER"); len(got) != 0 {
		t.Errorf("InCategory(WEATHER) = %v, want empty", got)
	}
	if cat.At(1).Name != "Talking Tom Gold Run" {
		t.Errorf("At(1) = %q", cat.At(1).Name)
	}

	genres := cat.Genres()
	genres[0] = "mutated"
	if cat.Genres()[0] == "mutated" {
		t.Error("Genres() exposes internal slice")
	}
}
