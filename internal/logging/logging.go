// Package logging configures the zerolog logger. The terminal belongs to the
// UI, so records go to a JSON log file that the admin dashboard tails.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

const service = "pigcat"

// Options configure New.
type Options struct {
	Path  string // log file; empty discards output
	Level string // zerolog level name, default "info"
	Debug bool   // forces debug level
}

// New opens the log file and returns a logger writing to it. The returned
// closer releases the file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	configureStacks()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log: %w", err)
	}
	return NewWriter(file, level), file, nil
}

// NewWriter returns a logger writing JSON records to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	configureStacks()
	return zerolog.New(w).Level(level).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

// configureStacks lets .Stack() on error events record a stack trace even
// for errors created without pkg/errors.
func configureStacks() {
	stacksOnce.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

var stacksOnce sync.Once

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
