// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

// Package catalog loads the Play Store app listing and prepares the
// feature-annotated catalog consumed by the recommender.
//
// # Pipeline
//
// Preparation runs once per process, in this order:
//
//  1. Drop known-corrupt rows (by zero-based data row index)
//  2. Deduplicate by app name, keeping the first occurrence
//  3. Parse rating and review count, derive popularity
//  4. Build the canonical genre dimensions and encode every entry
//  5. Extract name keywords, build the canonical keyword dimensions
//     (stems seen at least twice) and encode every entry
//
// Popularity is a signed score:
//
//	popularity = (rating - 3.5) * reviews   // 0 when rating is missing
//
// # Genre Encoding
//
// Compound labels in the source data ("Action & Adventure", "Music & Audio",
// "Music & Video", "Educational") are not dimensions of their own. They fan
// out to the atomic slots they name, so a single raw label can set several
// slots at once.
//
// # Thread Safety
//
// A Catalog is immutable once Build returns. It may be shared by any number
// of concurrent readers without locking.
package catalog
