// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

/*
Package logging provides the process-wide zerolog logger used by every playrec
component.

The logger is configured once from the logging section of the configuration:

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	    Caller: cfg.Logging.Caller,
	})

Components derive a child logger carrying a component field:

	logger := logging.WithComponent("catalog")
	logger.Info().Int("entries", n).Msg("Catalog prepared")

HTTP handlers log through the request context so that every line carries the
request ID assigned by the request ID middleware:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("Lookup failed")

Log output goes to stderr. Recommendation output from the command line goes
to stdout, so the two never interleave when stdout is piped.

# Configuration

Environment variables (see internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: console for the interactive command)
  - LOG_CALLER: include caller file and line (default: false)

Always terminate event chains with .Msg() or .Send(); an unterminated chain
is never written.
*/
package logging
