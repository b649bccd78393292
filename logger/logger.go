// Package logger configures the zerolog logger used by the frames
// executable. Logs go to stderr; stdout carries the tables.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Level is the minimum severity that gets logged
type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error", "err":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Format selects human-readable console output or one JSON object per line
type Format string

const (
	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"
)

type Config struct {
	Level  Level
	Format Format
}

// New builds a logger writing to stderr.
func New(config Config) zerolog.Logger {
	return NewWithWriter(config, os.Stderr)
}

// NewWithWriter builds a logger writing to out.
func NewWithWriter(config Config, out io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(config.Level.zerolog())
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	w := out
	if config.Format != JSONFormat {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}
	return zerolog.New(w).
		Level(config.Level.zerolog()).
		With().
		Timestamp().
		Str("module", "frames").
		Logger()
}
