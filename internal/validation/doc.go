// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package validation wraps go-playground/validator v10 with a process-wide
validator instance and error types that render as API error bodies.

Two kinds of structs are validated: the configuration (internal/config) and
HTTP query parameters (internal/api). Field names in error messages come from
the query tag, then the koanf tag, then the Go field name, so a request error
names the parameter the caller actually sent:

	type similarRequest struct {
	    Name string `query:"name" validate:"required,notblank,max=200"`
	    K    int    `query:"k" validate:"min=1,max=20"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    // apiErr.Code == "VALIDATION_ERROR"
	}

# Custom Tags

  - notblank: string contains at least one non-space character
  - loglevel: a level name accepted by internal/logging
*/
package validation
