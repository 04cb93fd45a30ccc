// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/playrec/internal/logging"
)

// Column names required in the source header. Everything else in the
// listing (Size, Price, Current Ver, ...) is ignored.
const (
	ColumnApp      = "App"
	ColumnCategory = "Category"
	ColumnRating   = "Rating"
	ColumnReviews  = "Reviews"
	ColumnGenres   = "Genres"
)

var requiredColumns = []string{ColumnApp, ColumnCategory, ColumnRating, ColumnReviews, ColumnGenres}

// LoadCSV reads the listing at path.
// Any failure is returned as a *LoadError carrying the path.
func LoadCSV(path string) ([]RawRecord, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &LoadError{Path: path, Row: -1, Op: "open", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close catalog file")
		}
	}()

	records, err := ReadCSV(bufio.NewReader(f))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}

	logging.Debug().Str("path", path).Int("rows", len(records)).Msg("Read catalog listing")
	return records, nil
}

// ReadCSV parses a listing with a header row. Rows shorter than the header
// are accepted and their missing fields read as empty strings.
func ReadCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty listing: %w", io.ErrUnexpectedEOF)
		}
		return nil, &LoadError{Row: -1, Op: "read", Err: err}
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, &LoadError{Row: -1, Op: "schema", Err: err}
	}

	var records []RawRecord
	for row := 0; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Row: row, Op: "read", Err: err}
		}

		records = append(records, RawRecord{
			Row:      row,
			App:      field(fields, cols[ColumnApp]),
			Category: field(fields, cols[ColumnCategory]),
			Rating:   field(fields, cols[ColumnRating]),
			Reviews:  field(fields, cols[ColumnReviews]),
			Genres:   field(fields, cols[ColumnGenres]),
		})
	}

	return records, nil
}

// locateColumns maps each required column to its header position.
func locateColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	cols := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
