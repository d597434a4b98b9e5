// Package config defines the configuration of the ovnidx command and
// provides loading and validation helpers.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is populated from a TOML file and then optionally overridden by
// OVNIDX_* environment variables.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Format selects command output, text or json.
	Format string `toml:"format"`
	// Holidays is an optional YAML holiday file whose holidays are added to the
	// bundled calendars of the same ID.
	Holidays string `toml:"holidays"`
	// Definitions is an optional YAML file of extra overnight index definitions.
	Definitions string `toml:"definitions"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
		Format:   "text",
	}
}

// Load reads the TOML configuration at path on top of Defaults, loads a .env
// file if present and applies environment overrides. A missing file is not an
// error unless required is set. The result has not been validated.
func Load(path string, required bool) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	// A missing .env file is expected.
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.LogLevel, "OVNIDX_LOG_LEVEL")
	setStr(&cfg.Format, "OVNIDX_FORMAT")
	setStr(&cfg.Holidays, "OVNIDX_HOLIDAYS")
	setStr(&cfg.Definitions, "OVNIDX_DEFINITIONS")
}

func setStr(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, f := range ValidFormats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
}

// Level converts LogLevel to a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
}
