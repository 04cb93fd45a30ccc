// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package config

import (
	"fmt"

	"github.com/tomtom215/playrec/internal/validation"
)

// Validate checks field-level tags, then the relations between fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateQuery(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateServer()
}

// validateQuery requires min_k <= default_k <= max_k.
func (c *Config) validateQuery() error {
	q := c.Query
	if q.MinK > q.MaxK {
		return fmt.Errorf("MIN_K (%d) must not exceed MAX_K (%d)", q.MinK, q.MaxK)
	}
	if q.DefaultK < q.MinK || q.DefaultK > q.MaxK {
		return fmt.Errorf("DEFAULT_K (%d) must be between MIN_K (%d) and MAX_K (%d)", q.DefaultK, q.MinK, q.MaxK)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.GenreWeight == 0 && c.Recommend.KeywordWeight == 0 {
		return fmt.Errorf("GENRE_WEIGHT and KEYWORD_WEIGHT cannot both be zero")
	}
	return nil
}

// validateServer only checks what the rate limiter needs.
func (c *Config) validateServer() error {
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}
