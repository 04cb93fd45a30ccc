// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/playrec/internal/catalog"
)

// ErrInvalidSelection is returned when a disambiguation index is out of range.
var ErrInvalidSelection = errors.New("invalid selection")

// NotFoundError reports a query that matched no app name.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no app name contains %q", e.Query)
}

// AmbiguousQueryError reports a query that matched several app names.
// Matches are in catalog order.
type AmbiguousQueryError struct {
	Query   string
	Matches []*catalog.Entry
}

func (e *AmbiguousQueryError) Error() string {
	names := make([]string, 0, len(e.Matches))
	for _, m := range e.Matches {
		names = append(names, m.Name)
	}
	const shown = 5
	list := names
	suffix := ""
	if len(list) > shown {
		list = list[:shown]
		suffix = ", ..."
	}
	return fmt.Sprintf("%d app names contain %q: %s%s", len(names), e.Query, strings.Join(list, ", "), suffix)
}
