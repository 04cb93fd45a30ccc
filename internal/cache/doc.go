// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

// Package cache provides a bounded, thread-safe LRU cache with TTL.
//
// playrec serve can use it (RESULT_CACHE_SIZE > 0) to keep recent neighbor
// rankings so repeated requests for popular apps skip the category scan. Rankings depend only on
// the immutable catalog, so entries never go stale; the TTL only bounds how
// long cold entries occupy memory.
//
//	c := cache.NewLRU[[]recommend.Neighbor](512, 10*time.Minute)
//	c.Add(key, neighbors)
//	if v, ok := c.Get(key); ok { ... }
package cache
