// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/metrics"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(buildFixture(t), logging.Nop())

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr string // "notfound", "ambiguous" or ""
		matches []string
	}{
		{name: "unique", query: "racing", want: "Racing Car"},
		{name: "case insensitive", query: "CHESS MASTER", want: "Chess Master Pro"},
		{name: "exact name", query: "Photo Collage", want: "Photo Collage"},
		{name: "not found", query: "zzz", wantErr: "notfound"},
		{
			name:    "ambiguous",
			query:   "sudoku",
			wantErr: "ambiguous",
			matches: []string{"Sudoku Free", "Sudoku Master"},
		},
		{
			name:    "ambiguous across categories",
			query:   "free",
			wantErr: "ambiguous",
			matches: []string{"Sudoku Free", "Chess Free"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.Resolve(tt.query)
			switch tt.wantErr {
			case "":
				if err != nil {
					t.Fatalf("Resolve(%q) error = %v", tt.query, err)
				}
				if got.Name != tt.want {
					t.Errorf("Resolve(%q) = %s, want %s", tt.query, got.Name, tt.want)
				}
			case "notfound":
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("Resolve(%q) error = %v, want *NotFoundError", tt.query, err)
				}
				if nf.Query != tt.query {
					t.Errorf("NotFoundError.Query = %q, want %q", nf.Query, tt.query)
				}
			case "ambiguous":
				var amb *AmbiguousQueryError
				if !errors.As(err, &amb) {
					t.Fatalf("Resolve(%q) error = %v, want *AmbiguousQueryError", tt.query, err)
				}
				if len(amb.Matches) != len(tt.matches) {
					t.Fatalf("len(Matches) = %d, want %d", len(amb.Matches), len(tt.matches))
				}
				for i, m := range amb.Matches {
					if m.Name != tt.matches[i] {
						t.Errorf("Matches[%d] = %s, want %s", i, m.Name, tt.matches[i])
					}
				}
			}
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(buildFixture(t), logging.Nop())
	matches := resolver.Find("sudoku")

	got, err := Select(matches, 1)
	if err != nil || got.Name != "Sudoku Master" {
		t.Errorf("Select(1) = %v, %v; want Sudoku Master", got, err)
	}

	for _, idx := range []int{-1, 2, 99} {
		if _, err := Select(matches, idx); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Select(%d) error = %v, want ErrInvalidSelection", idx, err)
		}
	}
}

func TestSelectString(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(buildFixture(t), logging.Nop())
	matches := resolver.Find("sudoku")

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"0", "Sudoku Free", false},
		{" 1 ", "Sudoku Master", false},
		{"2", "", true},
		{"one", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := SelectString(matches, tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("SelectString(%q) error = %v, want ErrInvalidSelection", tt.raw, err)
			}
			continue
		}
		if err != nil || got.Name != tt.want {
			t.Errorf("SelectString(%q) = %v, %v; want %s", tt.raw, got, err, tt.want)
		}
	}
}

func TestClampK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{" 7 ", 7},
		{"20", 20},
		{"25", 20},
		{"abc", 10},
		{"", 10},
		{"4.5", 10},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			t.Parallel()
			if got := ClampK(tt.raw, 10, 1, 20); got != tt.want {
				t.Errorf("ClampK(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", &NotFoundError{Query: "x"}, true},
		{"wrapped ambiguous", fmt.Errorf("lookup: %w", &AmbiguousQueryError{Query: "x"}), true},
		{"bad index", fmt.Errorf("%w: 9", ErrInvalidSelection), true},
		{"other", errors.New("disk on fire"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		if got := IsRecoverable(tt.err); got != tt.want {
			t.Errorf("IsRecoverable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAmbiguousQueryError_Message(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(buildFixture(t), logging.Nop())

	// Every fixture name except "Racing Car" contains an "e".
	_, err := resolver.Resolve("e")
	var amb *AmbiguousQueryError
	if !errors.As(err, &amb) {
		t.Fatalf("Resolve(e) error = %v, want *AmbiguousQueryError", err)
	}
	if len(amb.Matches) != 6 {
		t.Fatalf("len(Matches) = %d, want 6", len(amb.Matches))
	}

	msg := amb.Error()
	if !strings.HasPrefix(msg, `6 app names contain "e": Sudoku Free, `) {
		t.Errorf("Error() = %q, want count, query and names", msg)
	}
	if !strings.HasSuffix(msg, ", ...") {
		t.Errorf("Error() = %q, want a truncated list", msg)
	}
}

// Not parallel: asserts deltas on the shared query outcome counters.
func TestResolver_ResolveExact(t *testing.T) {
	records := []catalog.RawRecord{
		{Row: 0, App: "Chess", Category: "GAME", Rating: "4.0", Reviews: "10", Genres: "Board"},
		{Row: 1, App: "Chess Free", Category: "GAME", Rating: "4.2", Reviews: "30", Genres: "Board"},
	}
	cat, err := catalog.NewBuilder(catalog.Options{}, logging.Nop()).Build(context.Background(), records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	resolver := NewResolver(cat, logging.Nop())

	resolved := metrics.QueriesTotal.WithLabelValues(metrics.OutcomeResolved)
	ambiguous := metrics.QueriesTotal.WithLabelValues(metrics.OutcomeAmbiguous)
	notFound := metrics.QueriesTotal.WithLabelValues(metrics.OutcomeNotFound)
	beforeResolved := testutil.ToFloat64(resolved)
	beforeAmbiguous := testutil.ToFloat64(ambiguous)
	beforeNotFound := testutil.ToFloat64(notFound)

	e, err := resolver.ResolveExact("Chess")
	if err != nil || e.Name != "Chess" {
		t.Fatalf("ResolveExact(Chess) = %v, %v; want the exact entry", e, err)
	}
	if _, err := resolver.ResolveExact("chess"); !errors.As(err, new(*AmbiguousQueryError)) {
		t.Errorf("ResolveExact(chess) error = %v, want *AmbiguousQueryError", err)
	}
	if _, err := resolver.ResolveExact("checkers"); !errors.As(err, new(*NotFoundError)) {
		t.Errorf("ResolveExact(checkers) error = %v, want *NotFoundError", err)
	}

	if got := testutil.ToFloat64(resolved) - beforeResolved; got != 1 {
		t.Errorf("resolved delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ambiguous) - beforeAmbiguous; got != 1 {
		t.Errorf("ambiguous delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(notFound) - beforeNotFound; got != 1 {
		t.Errorf("not found delta = %v, want 1", got)
	}
}
