// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package config loads and validates playrec configuration.

# Configuration Sources

Sources are layered, later layers overriding earlier ones:
 1. Built-in defaults
 2. Optional YAML file (the -config flag, CONFIG_PATH, config.yaml or config.yml)
 3. Environment variables listed below

A .env file in the working directory is loaded into the environment by the
command before configuration is read.

# Environment Variables

Catalog:
  - CATALOG_PATH: Play Store listing CSV (default: googleplaystore.csv)
  - CATALOG_BAD_ROWS: comma-separated data rows to drop (default: 10472)

Query:
  - DEFAULT_K: neighbors returned when none is requested (default: 10)
  - MIN_K / MAX_K: bounds applied to a requested count (default: 1 / 20; MAX_K may not exceed 20)
  - MAX_ATTEMPTS: retries allowed in one interactive lookup (default: 5)

Recommend:
  - GENRE_WEIGHT / KEYWORD_WEIGHT: distance weights (default: 1.0 / 1.0)

Server (playrec serve):
  - HTTP_HOST, HTTP_PORT (default: 127.0.0.1, 8080)
  - HTTP_TIMEOUT: request timeout (default: 15s)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 60 per 1m)
  - DISABLE_RATE_LIMIT: turn the limiter off
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RESULT_CACHE_SIZE: cached rankings in serve mode, 0 disables the cache (default: 0)
  - RESULT_CACHE_TTL: lifetime of a cached ranking (default: 10m)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: console)
  - LOG_CALLER: include caller file and line (default: false)

# Example

	cfg, err := config.LoadWithKoanf(*configPath)
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
