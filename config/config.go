// Package config holds the settings of the frames executable. Every setting
// has a default, so the program runs with no environment at all.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"frames/logger"
	"frames/render"
)

var ErrInvalid = errors.New("invalid configuration")

// Config represents the complete application configuration
type Config struct {
	Display DisplayConfig
	Log     logger.Config
}

// DisplayConfig controls how tables are printed
type DisplayConfig struct {
	Style       render.Style
	EmptyMarker string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Style:       render.Grid,
			EmptyMarker: render.DefaultEmptyMarker,
		},
		Log: logger.Config{
			Level:  logger.InfoLevel,
			Format: logger.ConsoleFormat,
		},
	}
}

// Load reads an optional .env file from the working directory, then applies
// FRAMES_* environment overrides on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function, os.Getenv in
// production.
func FromEnv(getenv func(string) string) (*Config, error) {
	config := Default()

	if v := getenv("FRAMES_STYLE"); v != "" {
		style, err := render.ParseStyle(v)
		if err != nil {
			return nil, errors.Wrap(ErrInvalid, err.Error())
		}
		config.Display.Style = style
	}
	if v := getenv("FRAMES_EMPTY_MARKER"); v != "" {
		config.Display.EmptyMarker = v
	}

	if v := getenv("FRAMES_LOG_LEVEL"); v != "" {
		level, ok := logger.ParseLevel(v)
		if !ok {
			return nil, errors.Wrapf(ErrInvalid, "FRAMES_LOG_LEVEL %q", v)
		}
		config.Log.Level = level
	}
	if v := getenv("FRAMES_LOG_FORMAT"); v != "" {
		switch format := logger.Format(strings.ToLower(v)); format {
		case logger.ConsoleFormat, logger.JSONFormat:
			config.Log.Format = format
		default:
			return nil, errors.Wrapf(ErrInvalid, "FRAMES_LOG_FORMAT %q", v)
		}
	}

	return config, nil
}
