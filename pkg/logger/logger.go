// Package logger builds the zerolog loggers shared by the API, the services
// and the background jobs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const ServiceName = "quizvault"

// Component names used with For.
const (
	Wallet   = "wallet"
	Auth     = "auth"
	Purchase = "purchase"
	Audit    = "audit"
	Jobs     = "jobs"
	Play     = "googleplay"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
}

// New returns the process logger. Pretty output is meant for local runs and
// also records the caller of each line.
func New(level string, pretty bool) zerolog.Logger {
	if !pretty {
		return build(os.Stdout, level)
	}
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return build(console, level).With().Caller().Logger()
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(w, level)
}

// For tags log with the component that owns the lines written through it.
func For(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func build(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", ServiceName).Logger()
}
