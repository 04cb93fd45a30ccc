// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

// Package main is the entry point for playrec, a content-based recommender
// over the Google Play Store listing.
//
// # Commands
//
//	playrec [flags]                               interactive session (default)
//	playrec [flags] recommend -name X [-k N] [-json]  one-shot recommendation
//	playrec [flags] serve                         read-only HTTP API
//
// Global flags:
//
//	-config <path>  YAML config file (also CONFIG_PATH)
//	-data <path>    Play Store CSV, overrides catalog.path (also CATALOG_PATH)
//
// # Configuration
//
// A .env file in the working directory is loaded first. Configuration is then
// layered by koanf: built-in defaults, config.yaml, environment variables.
// See package config for every variable.
//
// # Startup
//
//  1. Load configuration and initialize zerolog
//  2. Read the CSV and build the catalog (fatal on any load error)
//  3. Run the selected command
//
// serve runs the HTTP server under a suture supervisor tree and shuts down
// gracefully on SIGINT and SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/config"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/prompt"
	"github.com/tomtom215/playrec/internal/recommend"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, prompt.ErrTooManyAttempts):
		fmt.Fprintln(os.Stderr, "No app selected.")
		os.Exit(1)
	case recommend.IsRecoverable(err), errors.Is(err, errNameRequired):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		logging.Fatal().Err(err).Msg("playrec failed")
	}
}

// app holds everything a command needs once the catalog is built.
type app struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	resolver *recommend.Resolver
	ranker   *recommend.Ranker
}

// run parses global flags, builds the catalog and dispatches the command.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("playrec", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	dataPath := fs.String("data", "", "path to the Play Store CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadWithKoanf(*configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if *dataPath != "" {
		cfg.Catalog.Path = *dataPath
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	command, rest := "interactive", []string(nil)
	if fs.NArg() > 0 {
		command, rest = fs.Arg(0), fs.Args()[1:]
	}
	switch command {
	case "interactive", "recommend", "serve":
	default:
		return fmt.Errorf("unknown command %q (want interactive, recommend or serve)", command)
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	switch command {
	case "recommend":
		return a.runRecommend(ctx, rest, stdout)
	case "serve":
		return a.runServe(ctx)
	default:
		return a.runInteractive(ctx, stdin, stdout)
	}
}

// newApp loads the listing and prepares the catalog.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	start := time.Now()

	records, err := catalog.LoadCSV(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	logger := logging.Logger()
	cat, err := catalog.NewBuilder(catalog.Options{BadRows: cfg.Catalog.BadRows}, logger).Build(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	logging.Info().
		Str("path", cfg.Catalog.Path).
		Int("entries", cat.Len()).
		Int("genre_dimensions", len(cat.Genres())).
		Int("keyword_dimensions", len(cat.Keywords())).
		Dur("duration", time.Since(start)).
		Msg("Catalog ready")

	weights := recommend.Weights{
		Genre:   cfg.Recommend.GenreWeight,
		Keyword: cfg.Recommend.KeywordWeight,
	}
	return &app{
		cfg:      cfg,
		catalog:  cat,
		resolver: recommend.NewResolver(cat, logger),
		ranker:   recommend.NewRanker(cat, weights, logger),
	}, nil
}

// runInteractive runs the prompt dialogue. Ending input or interrupting the
// session is a normal exit.
func (a *app) runInteractive(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	session := prompt.NewSession(a.resolver, a.ranker, stdin, stdout, prompt.Options{
		DefaultK:    a.cfg.Query.DefaultK,
		MinK:        a.cfg.Query.MinK,
		MaxK:        a.cfg.Query.MaxK,
		MaxAttempts: a.cfg.Query.MaxAttempts,
	}, logging.Logger())

	err := session.Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
