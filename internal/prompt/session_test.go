// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/recommend"
)

func newTestSession(t *testing.T, input string, opts Options) (*Session, *bytes.Buffer) {
	t.Helper()

	records := []catalog.RawRecord{
		{Row: 0, App: "Sudoku Free", Category: "GAME", Rating: "4.5", Reviews: "1000", Genres: "Puzzle"},
		{Row: 1, App: "Sudoku Master", Category: "GAME", Rating: "4.0", Reviews: "500", Genres: "Puzzle"},
		{Row: 2, App: "Chess Free", Category: "GAME", Rating: "4.2", Reviews: "300", Genres: "Board"},
		{Row: 3, App: "Solo Weather", Category: "WEATHER", Rating: "", Reviews: "3", Genres: "Weather"},
	}
	cat, err := catalog.NewBuilder(catalog.Options{}, logging.Nop()).Build(context.Background(), records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var out bytes.Buffer
	s := NewSession(
		recommend.NewResolver(cat, logging.Nop()),
		recommend.NewRanker(cat, recommend.DefaultWeights(), logging.Nop()),
		strings.NewReader(input),
		&out,
		opts,
		logging.Nop(),
	)
	return s, &out
}

func TestSession_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		contains []string
		excludes []string
	}{
		{
			name:  "unique match with default k",
			input: "chess\n\n\n",
			contains: []string{
				"Selected App: Chess Free",
				"Recommended Apps:",
				"Sudoku Free\nGenres: Puzzle | Rating: 4.5",
				"Sudoku Master\nGenres: Puzzle | Rating: 4.0",
			},
		},
		{
			name:  "ambiguous then index",
			input: "sudoku\n1\n\n1\n",
			contains: []string{
				"[0] Sudoku Free",
				"[1] Sudoku Master",
				"Selected App: Sudoku Master",
				"Recommended Apps:\nSudoku Free\n",
			},
			excludes: []string{"Chess Free\nGenres"},
		},
		{
			name:     "not found then retry",
			input:    "minecraft\nchess\n\n1\n",
			contains: []string{`No apps found matching "minecraft"`, "Selected App: Chess Free"},
		},
		{
			name:     "rejected confirmation restarts",
			input:    "chess\nno\nsudoku m\n\n5\n",
			contains: []string{"Selected App: Chess Free", "Selected App: Sudoku Master", "Recommended Apps:"},
		},
		{
			name:     "invalid index spends an attempt",
			input:    "sudoku\n7\nchess\n\n\n",
			contains: []string{"invalid selection", "Selected App: Chess Free"},
		},
		{
			name:     "singleton category",
			input:    "weather\n\n\n",
			contains: []string{"No other apps in category WEATHER."},
			excludes: []string{"Recommended Apps:"},
		},
		{
			name:     "last line without newline",
			input:    "chess\n\n2",
			contains: []string{"Recommended Apps:"},
		},
		{
			name:    "attempts exhausted",
			input:   "x\ny\nz\n",
			wantErr: ErrTooManyAttempts,
		},
		{
			name:    "end of input",
			input:   "",
			wantErr: io.EOF,
		},
		{
			name:    "end of input at confirmation",
			input:   "chess\n",
			wantErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.MaxAttempts = 3
			s, out := newTestSession(t, tt.input, opts)

			err := s.Run(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Run() error = %v\noutput:\n%s", err, out.String())
			}

			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q\noutput:\n%s", want, out.String())
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out.String(), unwanted) {
					t.Errorf("output contains %q\noutput:\n%s", unwanted, out.String())
				}
			}
		})
	}
}

func TestSession_ClampsK(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.MaxK = 1
	s, out := newTestSession(t, "chess\n\n25\n", opts)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.Count(out.String(), "Genres:"); got != 1 {
		t.Errorf("printed %d results, want 1\noutput:\n%s", got, out.String())
	}
}

func TestSession_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := newTestSession(t, "chess\n\n\n", DefaultOptions())
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestNewSession_MinimumOneAttempt(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, "x\n", Options{DefaultK: 10, MinK: 1, MaxK: 20})
	if err := s.Run(context.Background()); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Run() error = %v, want ErrTooManyAttempts", err)
	}
}
