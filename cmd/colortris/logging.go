package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the run's logger. With a log file configured it writes
// JSON lines there; otherwise it writes human-readable lines to console, or
// nowhere when console is nil.
func newLogger(cfg config, console io.Writer, runID string) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case console != nil:
		out = zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run", runID).
		Logger()
	return logger, closer, nil
}
