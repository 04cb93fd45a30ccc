// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package supervisor

import (
	"context"
	"time"

	"github.com/tomtom215/playrec/internal/logging"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	CleanupExpired() int
	Len() int
}

// SweepService calls a Sweeper on a fixed interval until canceled.
type SweepService struct {
	name     string
	target   Sweeper
	interval time.Duration
}

// NewSweepService creates a sweep service. A non-positive interval means 1m.
func NewSweepService(name string, target Sweeper, interval time.Duration) *SweepService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweepService{name: name, target: target, interval: interval}
}

// Serve implements suture.Service.
func (s *SweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.target.CleanupExpired(); removed > 0 {
				logging.Debug().
					Str("service", s.name).
					Int("removed", removed).
					Int("remaining", s.target.Len()).
					Msg("Swept expired entries")
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *SweepService) String() string {
	return s.name
}
