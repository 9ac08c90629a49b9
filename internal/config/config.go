// Package config loads settings for the siteswap command.
//
// Sources, lowest to highest precedence: defaults, SITESWAP_* environment
// variables, an optional TOML file, command-line flags (applied by the
// caller after Load).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalid indicates a setting holds an unsupported value.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the command settings. Strict runs the full balance check
// before decomposing.
type Config struct {
	LogLevel   string `env:"SITESWAP_LOG_LEVEL" envDefault:"warn" toml:"log_level"`
	Format     string `env:"SITESWAP_FORMAT" envDefault:"text" toml:"format"`
	Strict     bool   `env:"SITESWAP_STRICT" envDefault:"true" toml:"strict"`
	ConfigFile string `env:"SITESWAP_CONFIG" toml:"-"`
}

// Load reads defaults and environment, then overlays the TOML file at path
// (or SITESWAP_CONFIG when path is empty). A missing file is an error only
// when one was named.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if path == "" {
		path = cfg.ConfigFile
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return fmt.Errorf("parsing TOML: %w", err)
	}

	return nil
}

// Validate checks that every setting holds a supported value.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (must be debug, info, warn, or error)", ErrInvalid, c.LogLevel)
	}

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (must be %s or %s)", ErrInvalid, c.Format, FormatText, FormatYAML)
	}

	return nil
}
