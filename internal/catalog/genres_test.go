// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"reflect"
	"testing"
)

func TestSplitGenres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: nil},
		{raw: "Puzzle", want: []string{"Puzzle"}},
		{raw: "Casual;Pretend Play", want: []string{"Casual", "Pretend Play"}},
		{raw: "Action;Action & Adventure", want: []string{"Action", "Action & Adventure"}},
	}

	for _, tt := range tests {
		if got := SplitGenres(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitGenres(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalGenres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		labelSets [][]string
		want      []string
	}{
		{
			name:      "empty catalog still has atomic genres",
			labelSets: nil,
			want:      []string{"Audio", "Video"},
		},
		{
			name: "compound labels removed",
			labelSets: [][]string{
				{"Action & Adventure"},
				{"Action"},
				{"Puzzle", "Educational"},
				{"Music & Audio"},
			},
			want: []string{"Action", "Audio", "Puzzle", "Video"},
		},
		{
			name:      "sorted and deduplicated",
			labelSets: [][]string{{"Racing", "Board"}, {"Board"}, {"Arcade"}},
			want:      []string{"Arcade", "Audio", "Board", "Racing", "Video"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanonicalGenres(tt.labelSets); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalGenres() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeGenres(t *testing.T) {
	t.Parallel()

	canonical := []string{"Action", "Adventure", "Audio", "Education", "Music", "Puzzle", "Video"}

	tests := []struct {
		name   string
		labels []string
		want   []uint8
	}{
		{name: "action and adventure compound", labels: []string{"Action & Adventure"}, want: []uint8{1, 1, 0, 0, 0, 0, 0}},
		{name: "music and video compound", labels: []string{"Music & Video"}, want: []uint8{0, 0, 0, 0, 1, 0, 1}},
		{name: "music and audio compound", labels: []string{"Music & Audio"}, want: []uint8{0, 0, 1, 0, 1, 0, 0}},
		{name: "educational triggers education", labels: []string{"Puzzle", "Educational"}, want: []uint8{0, 0, 0, 1, 0, 1, 0}},
		{name: "plain label and compound overlap", labels: []string{"Action", "Action & Adventure"}, want: []uint8{1, 1, 0, 0, 0, 0, 0}},
		{name: "unknown label ignored", labels: []string{"Racing"}, want: []uint8{0, 0, 0, 0, 0, 0, 0}},
		{name: "no labels", labels: nil, want: []uint8{0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EncodeGenres(tt.labels, canonical)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeGenres(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}
