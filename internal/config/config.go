// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Query     QueryConfig     `koanf:"query"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the listing and the rows known to be corrupt.
type CatalogConfig struct {
	// Path is the Play Store listing CSV.
	Path string `koanf:"path" validate:"required,notblank"`

	// BadRows are zero-based data row indexes dropped before cleaning.
	// Empty means nothing is dropped.
	BadRows []int `koanf:"bad_rows" validate:"dive,min=0"`
}

// QueryConfig bounds the number of neighbors and interactive retries.
// MaxK is capped at 20; validateQuery keeps MinK and DefaultK inside it.
type QueryConfig struct {
	DefaultK    int `koanf:"default_k" validate:"min=1"`
	MinK        int `koanf:"min_k" validate:"min=1"`
	MaxK        int `koanf:"max_k" validate:"min=1,max=20"`
	MaxAttempts int `koanf:"max_attempts" validate:"min=1,max=100"`
}

// RecommendConfig weights the two halves of the combined distance.
// Both default to 1.0.
type RecommendConfig struct {
	GenreWeight   float64 `koanf:"genre_weight" validate:"gte=0"`
	KeywordWeight float64 `koanf:"keyword_weight" validate:"gte=0"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Host              string        `koanf:"host" validate:"required"`
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout           time.Duration `koanf:"timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// CacheSize bounds the ranking cache; 0 disables it.
	CacheSize int           `koanf:"cache_size" validate:"min=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"loglevel"`

	// Format is the output format: json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
