// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"sort"
)

// RawRecord is one row of the source listing before any cleaning.
// Only the columns the recommender needs are retained.
type RawRecord struct {
	// Row is the zero-based data row index (header excluded).
	Row int

	App      string
	Category string
	Rating   string
	Reviews  string

	// Genres is the semicolon-delimited genre string, e.g. "Casual;Pretend Play".
	Genres string
}

// Entry is a cleaned, feature-annotated app record.
// Entries are never mutated after Build returns.
type Entry struct {
	// Name is the app name, unique within a catalog.
	Name string `json:"name"`

	// Category is the single store category the app belongs to.
	Category string `json:"category"`

	// Rating is the average store rating (1-5). Only meaningful when HasRating is set.
	Rating float64 `json:"rating"`

	// HasRating is false when the source row carried no usable rating.
	HasRating bool `json:"has_rating"`

	// Reviews is the number of reviews.
	Reviews int64 `json:"reviews"`

	// Popularity is (Rating - 3.5) * Reviews, or 0 without a rating.
	Popularity float64 `json:"popularity"`

	// Genres holds the raw genre labels in source order.
	Genres []string `json:"genres"`

	// Keywords holds the stemmed name keywords in name order.
	Keywords []string `json:"keywords"`

	// GenreVector has one slot per canonical genre.
	GenreVector []uint8 `json:"-"`

	// KeywordVector has one slot per canonical keyword.
	KeywordVector []uint8 `json:"-"`
}

// Catalog is an ordered, name-deduplicated collection of entries together
// with the canonical dimensions their vectors are encoded against.
type Catalog struct {
	entries    []Entry
	genres     []string
	keywords   []string
	byName     map[string]int
	byCategory map[string][]int
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at position i in catalog order.
func (c *Catalog) At(i int) *Entry {
	return &c.entries[i]
}

// Entries returns every entry in catalog order.
// Callers must treat the returned entries as read-only.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	for i := range c.entries {
		out[i] = &c.entries[i]
	}
	return out
}

// Lookup returns the entry with exactly the given name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// InCategory returns the entries of one category in catalog order.
func (c *Catalog) InCategory(category string) []*Entry {
	idx := c.byCategory[category]
	out := make([]*Entry, len(idx))
	for i, j := range idx {
		out[i] = &c.entries[j]
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Genres returns the canonical genre dimensions in vector order.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// Keywords returns the canonical keyword dimensions in vector order.
func (c *Catalog) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// newCatalog indexes prepared entries. Entries must already be deduplicated.
func newCatalog(entries []Entry, genres, keywords []string) *Catalog {
	c := &Catalog{
		entries:    entries,
		genres:     genres,
		keywords:   keywords,
		byName:     make(map[string]int, len(entries)),
		byCategory: make(map[string][]int),
	}
	for i := range entries {
		c.byName[entries[i].Name] = i
		c.byCategory[entries[i].Category] = append(c.byCategory[entries[i].Category], i)
	}
	return c
}
