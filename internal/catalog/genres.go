// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"sort"
	"strings"
)

// genreSeparator splits the raw Genres column.
const genreSeparator = ";"

// compoundGenres are raw labels that never become dimensions themselves.
var compoundGenres = map[string]struct{}{
	"Action & Adventure": {},
	"Educational":        {},
	"Music & Video":      {},
	"Music & Audio":      {},
}

// atomicGenres are always dimensions, even when no app carries them directly.
var atomicGenres = []string{"Audio", "Video"}

// genreTriggers lists, per canonical slot, the raw labels that switch it on.
// Slots not listed are triggered by their own label only.
var genreTriggers = map[string][]string{
	"Action":    {"Action & Adventure", "Action"},
	"Adventure": {"Action & Adventure", "Adventure"},
	"Audio":     {"Music & Audio", "Audio"},
	"Video":     {"Music & Video", "Video"},
	"Music":     {"Music & Audio", "Music & Video", "Music"},
	"Education": {"Educational", "Education"},
}

// SplitGenres splits a raw Genres value into labels.
// An empty value yields no labels.
func SplitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, genreSeparator)
}

// CanonicalGenres derives the sorted genre dimensions from every label seen
// in the catalog: compound labels are removed and the atomic Audio and Video
// labels are always present.
func CanonicalGenres(labelSets [][]string) []string {
	set := make(map[string]struct{})
	for _, labels := range labelSets {
		for _, l := range labels {
			if _, compound := compoundGenres[l]; compound {
				continue
			}
			set[l] = struct{}{}
		}
	}
	for _, l := range atomicGenres {
		set[l] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// EncodeGenres one-hot encodes raw labels against the canonical dimensions.
func EncodeGenres(labels, canonical []string) []uint8 {
	present := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		present[l] = struct{}{}
	}

	vec := make([]uint8, len(canonical))
	for i, slot := range canonical {
		triggers, ok := genreTriggers[slot]
		if !ok {
			triggers = []string{slot}
		}
		for _, t := range triggers {
			if _, hit := present[t]; hit {
				vec[i] = 1
				break
			}
		}
	}
	return vec
}
