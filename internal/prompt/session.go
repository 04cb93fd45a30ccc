// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/playrec/internal/catalog"
	"github.com/tomtom215/playrec/internal/recommend"
)

// ErrTooManyAttempts is returned when every attempt ended without a selection.
var ErrTooManyAttempts = errors.New("too many attempts")

// Options bounds a session.
type Options struct {
	DefaultK    int
	MinK        int
	MaxK        int
	MaxAttempts int
}

// DefaultOptions returns the interactive defaults: 10 results, at most 20,
// and five attempts.
func DefaultOptions() Options {
	return Options{DefaultK: 10, MinK: 1, MaxK: 20, MaxAttempts: 5}
}

// Session is one interactive dialogue. It is not safe for concurrent use.
type Session struct {
	resolver *recommend.Resolver
	ranker   *recommend.Ranker
	in       *bufio.Reader
	out      io.Writer
	opts     Options
	logger   zerolog.Logger
}

// NewSession creates a session reading answers from in and writing prompts
// and results to out.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSession(resolver *recommend.Resolver, ranker *recommend.Ranker, in io.Reader, out io.Writer, opts Options, logger zerolog.Logger) *Session {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &Session{
		resolver: resolver,
		ranker:   ranker,
		in:       bufio.NewReader(in),
		out:      out,
		opts:     opts,
		logger:   logger.With().Str("component", "prompt").Logger(),
	}
}

// Run drives the dialogue until recommendations are printed, the attempt
// budget is spent, input ends, or ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		app, err := s.selectApp()
		if err != nil {
			if recommend.IsRecoverable(err) {
				s.logger.Debug().Err(err).Int("attempt", attempt).Msg("selection failed")
				s.printf("%s\n", describe(err))
				continue
			}
			return err
		}

		ok, err := s.confirm(app)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Debug().Int("attempt", attempt).Str("app", app.Name).Msg("selection rejected")
			continue
		}

		return s.recommend(ctx, app)
	}

	return fmt.Errorf("%w: gave up after %d", ErrTooManyAttempts, s.opts.MaxAttempts)
}

// selectApp asks for a name and, if needed, an index among the matches.
func (s *Session) selectApp() (*catalog.Entry, error) {
	query, err := s.ask("Enter app name: ")
	if err != nil {
		return nil, fmt.Errorf("read app name: %w", err)
	}

	app, err := s.resolver.Resolve(query)
	var amb *recommend.AmbiguousQueryError
	if !errors.As(err, &amb) {
		return app, err
	}

	s.printf("Multiple apps match %q:\n", query)
	for i, m := range amb.Matches {
		s.printf("  [%d] %s\n", i, m.Name)
	}
	raw, err := s.ask("Select index: ")
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return recommend.SelectString(amb.Matches, raw)
}

// confirm shows the selection; an empty answer accepts it.
func (s *Session) confirm(app *catalog.Entry) (bool, error) {
	s.printf("Selected App: %s\n", app.Name)
	answer, err := s.ask("Press enter if correct, or type anything to search again: ")
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return answer == "", nil
}

func (s *Session) recommend(ctx context.Context, app *catalog.Entry) error {
	raw, err := s.ask(fmt.Sprintf("Number of recommendations (default %d, max %d): ", s.opts.DefaultK, s.opts.MaxK))
	if err != nil {
		return fmt.Errorf("read count: %w", err)
	}
	k := recommend.ClampK(raw, s.opts.DefaultK, s.opts.MinK, s.opts.MaxK)

	if err := ctx.Err(); err != nil {
		return err
	}

	neighbors := s.ranker.Rank(app, k)
	if len(neighbors) == 0 {
		s.printf("No other apps in category %s.\n", app.Category)
		return nil
	}

	s.printf("Recommended Apps:\n")
	return recommend.WriteNeighbors(s.out, neighbors)
}

// ask prints a prompt and reads one trimmed line. A final line without a
// newline is still returned; only an empty read at end of input is io.EOF.
func (s *Session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// printf writes to the session output, ignoring write errors.
func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func describe(err error) string {
	var nf *recommend.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("No apps found matching %q. Try again.", nf.Query)
	}
	return fmt.Sprintf("%v. Try again.", err)
}
