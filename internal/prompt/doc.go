// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

// Package prompt runs the interactive recommendation dialogue on a terminal.
//
// A session asks for an app name, lets the user pick among ambiguous matches,
// confirms the selection, asks how many recommendations to show and prints
// them. Every restart (no match, bad index, rejected confirmation) spends one
// attempt from a fixed budget; when the budget is gone Run returns
// ErrTooManyAttempts. End of input ends the session with an error wrapping
// io.EOF.
package prompt
