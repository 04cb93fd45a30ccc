// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/playrec/internal/api"
	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/recommend"
)

// errNameRequired is returned when recommend is run without -name.
var errNameRequired = errors.New("recommend: -name is required")

// runRecommend prints the neighbors of one app and exits. An exact name wins
// over a substring match; an ambiguous substring is an error listing the
// candidates.
func (a *app) runRecommend(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	name := fs.String("name", "", "app name or unique substring")
	rawK := fs.String("k", strconv.Itoa(a.cfg.Query.DefaultK), "number of recommendations")
	asJSON := fs.Bool("json", false, "write JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errNameRequired
	}

	entry, err := a.lookup(*name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	k := recommend.ClampK(*rawK, a.cfg.Query.DefaultK, a.cfg.Query.MinK, a.cfg.Query.MaxK)
	neighbors := a.ranker.Rank(entry, k)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(api.SimilarResponse{
			App:       api.NewAppDTO(entry),
			K:         k,
			Neighbors: api.NewNeighborDTOs(neighbors),
		})
	}

	if _, err := fmt.Fprintf(stdout, "Selected App: %s\n", entry.Name); err != nil {
		return err
	}
	if len(neighbors) == 0 {
		_, err := fmt.Fprintf(stdout, "No other apps in category %s.\n", entry.Category)
		return err
	}
	if _, err := fmt.Fprintln(stdout, "Recommended Apps:"); err != nil {
		return err
	}
	return recommend.WriteNeighbors(stdout, neighbors)
}

func (a *app) lookup(name string) (*catalog.Entry, error) {
	return a.resolver.ResolveExact(name)
}
