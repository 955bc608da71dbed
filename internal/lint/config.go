package lint

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxHeaderLength is the column limit applied when no explicit
// limit is configured.
const DefaultMaxHeaderLength = 72

var errNonPositiveHeaderLength = errors.New("max header length must be greater than zero")

// Config holds the tunable parameters for rule evaluation. Build it with
// NewConfig; a Config is immutable afterwards and may be shared freely
// across concurrent evaluations.
type Config struct {
	// AllowedTypes restricts the commit type. nil means no restriction.
	// Membership is checked case-insensitively; type-case reports casing.
	AllowedTypes []string

	// ExemptPatterns excludes matching headers (merges, reverts, fixups)
	// from rule evaluation entirely.
	ExemptPatterns []*regexp.Regexp

	MaxHeaderLength int
}

// NewConfig builds a validated Config. Pattern compilation and parameter
// checks happen here, before any evaluation begins, so a bad configuration
// is rejected at startup rather than mid-batch.
func NewConfig(maxHeaderLength int, allowedTypes, exemptPatterns []string) (*Config, error) {
	if maxHeaderLength <= 0 {
		return nil, errNonPositiveHeaderLength
	}

	var compiled []*regexp.Regexp
	for _, pattern := range exemptPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exempt pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}

	cfg := &Config{
		MaxHeaderLength: maxHeaderLength,
		ExemptPatterns:  compiled,
	}
	if allowedTypes != nil {
		cfg.AllowedTypes = append([]string(nil), allowedTypes...)
	}

	return cfg, nil
}

// Exempt reports whether the header matches one of the configured exempt
// patterns.
func (c *Config) Exempt(header string) bool {
	for _, re := range c.ExemptPatterns {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// allowsType reports whether the type is permitted, ignoring case.
func (c *Config) allowsType(commitType string) bool {
	if c.AllowedTypes == nil {
		return true
	}
	for _, allowed := range c.AllowedTypes {
		if strings.EqualFold(allowed, commitType) {
			return true
		}
	}
	return false
}
