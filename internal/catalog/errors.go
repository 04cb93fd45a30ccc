// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is wrapped by a LoadError when a required column is absent.
var ErrMissingColumn = errors.New("missing required column")

// LoadError reports a failure to read or interpret the source listing.
// It is fatal to a run: no catalog is produced.
type LoadError struct {
	// Path is the source file, empty when reading from a stream.
	Path string

	// Row is the zero-based data row index, or -1 when not row specific.
	Row int

	// Op names the failing step: "open", "read", "schema" or "parse".
	Op string

	Err error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	if e.Row >= 0 {
		return fmt.Sprintf("catalog %s %s (row %d): %v", e.Op, src, e.Row, e.Err)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Op, src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
