// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) CleanupExpired() int {
	c.calls.Add(1)
	return 1
}

func (c *countingSweeper) Len() int {
	return 0
}

func TestNewSweepService(t *testing.T) {
	t.Parallel()

	svc := NewSweepService("sweeper", &countingSweeper{}, 0)
	if svc.interval != time.Minute {
		t.Errorf("interval = %v, want 1m default", svc.interval)
	}
	if svc.String() != "sweeper" {
		t.Errorf("String() = %q, want sweeper", svc.String())
	}
}

func TestSweepServiceServe(t *testing.T) {
	t.Parallel()

	target := &countingSweeper{}
	svc := NewSweepService("sweeper", target, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for target.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
	if n := target.calls.Load(); n < 2 {
		t.Errorf("CleanupExpired calls = %d, want at least 2", n)
	}
}
