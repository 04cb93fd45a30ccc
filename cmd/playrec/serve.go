// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/playrec/internal/api"
	"github.com/tomtom215/playrec/internal/cache"
	"github.com/tomtom215/playrec/internal/logging"
	"github.com/tomtom215/playrec/internal/recommend"
	"github.com/tomtom215/playrec/internal/supervisor"
)

// runServe serves the API until ctx is canceled.
func (a *app) runServe(ctx context.Context) error {
	handler := api.NewHandler(a.catalog, a.resolver, a.ranker, a.cfg.Query, logging.Logger())
	var results *cache.LRU[[]recommend.Neighbor]
	if a.cfg.Server.CacheSize > 0 {
		results = cache.NewLRU[[]recommend.Neighbor](a.cfg.Server.CacheSize, a.cfg.Server.CacheTTL)
		handler.WithResultCache(results)
	}
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(&a.cfg.Server))

	server := &http.Server{
		Addr:              net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:           api.NewRouter(handler, mw),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       a.cfg.Server.Timeout,
		WriteTimeout:      a.cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddAPIService(supervisor.NewHTTPServerService(server, 10*time.Second))
	if results != nil {
		tree.AddAPIService(supervisor.NewSweepService("result-cache-sweeper", results, time.Minute))
	}

	logging.Info().
		Str("addr", server.Addr).
		Bool("rate_limit", !a.cfg.Server.RateLimitDisabled).
		Strs("cors_origins", a.cfg.Server.CORSOrigins).
		Int("result_cache", a.cfg.Server.CacheSize).
		Msg("Starting HTTP server")

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown requested, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("HTTP server stopped")
	return nil
}
