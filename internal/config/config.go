// Package config loads and validates the commitlint YAML configuration.
// The core never reads files or environment state itself: this package
// builds the immutable lint.Config before any evaluation begins.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/commitlint-go/commitlint/internal/lint"
)

// DefaultFilename is the config file looked up in the repository root.
const DefaultFilename = ".commitlint.yaml"

// Config is the on-disk configuration. Zero fields fall back to defaults,
// so a partial file only overrides what it names.
type Config struct {
	MaxHeaderLength int           `yaml:"max-header-length,omitempty"`
	Types           []string      `yaml:"types,omitempty"`
	ExemptPatterns  []string      `yaml:"exempt-patterns,omitempty"`
	Logging         LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig controls the diagnostic log file.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`
	MaxSizeMB  int    `yaml:"max-size,omitempty"`
	MaxBackups int    `yaml:"max-backups,omitempty"`
	MaxAgeDays int    `yaml:"max-age,omitempty"`
}

// Load reads the config file at path. A missing file is not an error:
// the defaults apply unchanged.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes.
func LoadFromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate performs full config validation. It runs once at startup;
// evaluation never sees an invalid configuration.
func (c *Config) Validate() error {
	if c.MaxHeaderLength <= 0 {
		return fmt.Errorf("max-header-length must be greater than zero, got %d", c.MaxHeaderLength)
	}

	for _, pattern := range c.ExemptPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exempt pattern %q: %w", pattern, err)
		}
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
		}
	}

	return nil
}

// LintConfig builds the immutable core configuration from the loaded file.
func (c *Config) LintConfig() (*lint.Config, error) {
	cfg, err := lint.NewConfig(c.MaxHeaderLength, c.Types, c.ExemptPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to build lint config: %w", err)
	}
	return cfg, nil
}

// Level returns the parsed logging level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.MaxHeaderLength == 0 {
		c.MaxHeaderLength = defaults.MaxHeaderLength
	}
	if c.Types == nil {
		c.Types = defaults.Types
	}
	if c.ExemptPatterns == nil {
		c.ExemptPatterns = defaults.ExemptPatterns
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = defaults.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = defaults.Logging.MaxAgeDays
	}
}
