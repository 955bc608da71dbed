package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(DefaultMaxHeaderLength, []string{"feat", "fix", "docs", "chore"}, nil)
	require.NoError(t, err)
	return cfg
}

func ruleIDs(violations []Violation) []string {
	var ids []string
	for _, v := range violations {
		ids = append(ids, v.RuleID)
	}
	return ids
}

func checkAll(raw string, cfg *Config) []Violation {
	parsed := Parse(raw)
	var violations []Violation
	for _, rule := range StandardRules() {
		violations = append(violations, rule.Check(parsed, cfg)...)
	}
	return violations
}

func TestRulesViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantIDs []string
	}{
		{
			name:    "conforming message",
			input:   "feat(auth): add login endpoint",
			wantIDs: nil,
		},
		{
			name:    "malformed header reports only header-parseable",
			input:   "Added login",
			wantIDs: []string{"header-parseable"},
		},
		{
			name:    "unknown type",
			input:   "wip: experiment",
			wantIDs: []string{"type-valid"},
		},
		{
			name:    "uppercase type fails only casing",
			input:   "FEAT: add login",
			wantIDs: []string{"type-case"},
		},
		{
			name:    "empty scope",
			input:   "feat(): add login",
			wantIDs: []string{"scope-empty"},
		},
		{
			name:    "uppercase description",
			input:   "feat: Add login",
			wantIDs: []string{"description-case"},
		},
		{
			name:    "trailing period",
			input:   "feat: add login.",
			wantIDs: []string{"description-no-trailing-period"},
		},
		{
			name:    "empty breaking change footer",
			input:   "feat!: drop cookies\n\nBREAKING CHANGE:  ",
			wantIDs: []string{"breaking-change-consistency"},
		},
		{
			name:    "violations accumulate without short-circuit",
			input:   "FEAT(): Add login.",
			wantIDs: []string{"type-case", "scope-empty", "description-case", "description-no-trailing-period"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			violations := checkAll(tt.input, testConfig(t))
			assert.Equal(t, tt.wantIDs, ruleIDs(violations))
		})
	}
}

func TestTypeValidNamesAllowedSet(t *testing.T) {
	t.Parallel()

	violations := checkAll("wip: experiment", testConfig(t))
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "feat, fix, docs, chore")
	assert.Equal(t, SeverityError, violations[0].Severity)
}

func TestTypeValidUnrestrictedWhenNil(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(DefaultMaxHeaderLength, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, checkAll("anything: goes here", cfg))
}

func TestHeaderLengthStatesActualAndMax(t *testing.T) {
	t.Parallel()

	header := "feat: " + strings.Repeat("a", 74) // 80 characters total
	require.Len(t, header, 80)

	violations := checkAll(header, testConfig(t))
	require.Equal(t, []string{"header-length"}, ruleIDs(violations))
	assert.Contains(t, violations[0].Message, "max: 72")
	assert.Contains(t, violations[0].Message, "current: 80")
}

func TestHeaderLengthBoundary(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(20, nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "exactly at limit", header: "feat: " + strings.Repeat("a", 14), want: false},
		{name: "one over limit", header: "feat: " + strings.Repeat("a", 15), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			violations := checkAll(tt.header, cfg)
			if tt.want {
				assert.Equal(t, []string{"header-length"}, ruleIDs(violations))
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}

func TestBreakingChangeSignalsAreEachSufficient(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	// Marker without footer is fine.
	assert.Empty(t, checkAll("feat!: drop cookies", cfg))

	// Footer without marker is fine too.
	assert.Empty(t, checkAll("feat: drop cookies\n\nBREAKING CHANGE: cookies are gone", cfg))
}

func TestRuleIDsMatchRegistrationOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"header-parseable",
		"type-valid",
		"type-case",
		"scope-empty",
		"description-not-empty",
		"description-case",
		"description-no-trailing-period",
		"header-length",
		"breaking-change-consistency",
	}

	var got []string
	for _, rule := range StandardRules() {
		got = append(got, rule.ID())
	}
	assert.Equal(t, want, got)
}
