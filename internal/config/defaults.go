package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultTypes are the commit types accepted when the config file does
// not declare its own list.
var defaultTypes = []string{
	"build",
	"ci",
	"docs",
	"feat",
	"fix",
	"perf",
	"refactor",
	"style",
	"test",
	"chore",
	"revert",
	"bump",
}

// defaultExemptPatterns exclude machine-generated commits (merges,
// reverts, autosquash fixups, dependency bumps) from rule evaluation.
var defaultExemptPatterns = []string{
	`^Merge `,
	`^Merged `,
	`^[Rr]evert `,
	`^fixup! `,
	`^squash! `,
	`^Automatic merge`,
	`^Auto-merged `,
	`^[Bb]ump \S+ from \S+ to \S+`,
}

// DefaultConfig returns the default commitlint configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxHeaderLength: 72,
		Types:           defaultTypes,
		ExemptPatterns:  defaultExemptPatterns,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes,
// used when writing a starter config file.
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
