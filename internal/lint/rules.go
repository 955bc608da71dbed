package lint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Severity classifies a violation. Every rule currently reports errors;
// the field exists so a future warning level does not change the shape of
// the result.
type Severity string

// SeverityError marks a violation that fails the verdict.
const SeverityError Severity = "error"

// Violation is one rule failure for one commit message.
type Violation struct {
	RuleID   string
	Message  string
	Severity Severity
}

// Rule checks one aspect of a parsed commit message. Rules are pure:
// same input and config always produce the same violations, and no rule
// depends on another rule's outcome.
type Rule interface {
	ID() string
	Check(parsed ParsedMessage, cfg *Config) []Violation
}

// StandardRules returns the full rule set in evaluation order. The order
// only affects report ordering: violations accumulate, they never
// short-circuit.
func StandardRules() []Rule {
	return []Rule{
		headerParseableRule{},
		typeValidRule{},
		typeCaseRule{},
		scopeEmptyRule{},
		descriptionNotEmptyRule{},
		descriptionCaseRule{},
		descriptionNoTrailingPeriodRule{},
		headerLengthRule{},
		breakingChangeConsistencyRule{},
	}
}

func errorViolation(ruleID, message string) []Violation {
	return []Violation{{RuleID: ruleID, Message: message, Severity: SeverityError}}
}

// headerParseableRule reports a header that does not match the grammar.
// It is the only rule that fires for a MalformedHeader; the structural
// rules below stay silent on malformed input so the root cause is
// reported exactly once.
type headerParseableRule struct{}

func (headerParseableRule) ID() string { return "header-parseable" }

func (headerParseableRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	if _, ok := parsed.(*MalformedHeader); ok {
		return errorViolation("header-parseable",
			"commit message does not follow the Conventional Commits format")
	}
	return nil
}

type typeValidRule struct{}

func (typeValidRule) ID() string { return "type-valid" }

func (typeValidRule) Check(parsed ParsedMessage, cfg *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	if cfg.allowsType(msg.Type) {
		return nil
	}
	return errorViolation("type-valid", fmt.Sprintf("invalid type %q, must be one of: %s",
		msg.Type, strings.Join(cfg.AllowedTypes, ", ")))
}

type typeCaseRule struct{}

func (typeCaseRule) ID() string { return "type-case" }

func (typeCaseRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	if msg.Type == strings.ToLower(msg.Type) {
		return nil
	}
	return errorViolation("type-case", fmt.Sprintf("type %q must be lowercase", msg.Type))
}

type scopeEmptyRule struct{}

func (scopeEmptyRule) ID() string { return "scope-empty" }

func (scopeEmptyRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	if !msg.HasScope || strings.TrimSpace(msg.Scope) != "" {
		return nil
	}
	return errorViolation("scope-empty", "scope cannot be empty")
}

type descriptionNotEmptyRule struct{}

func (descriptionNotEmptyRule) ID() string { return "description-not-empty" }

func (descriptionNotEmptyRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	if strings.TrimSpace(msg.Description) != "" {
		return nil
	}
	return errorViolation("description-not-empty", "description is missing")
}

type descriptionCaseRule struct{}

func (descriptionCaseRule) ID() string { return "description-case" }

func (descriptionCaseRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(strings.TrimSpace(msg.Description))
	if first == utf8.RuneError || !unicode.IsUpper(first) {
		return nil
	}
	return errorViolation("description-case", "description must not start with an uppercase letter")
}

type descriptionNoTrailingPeriodRule struct{}

func (descriptionNoTrailingPeriodRule) ID() string { return "description-no-trailing-period" }

func (descriptionNoTrailingPeriodRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	if !strings.HasSuffix(strings.TrimSpace(msg.Description), ".") {
		return nil
	}
	return errorViolation("description-no-trailing-period", "description cannot end with a full stop")
}

// headerLengthRule measures the full original header line, not just the
// description.
type headerLengthRule struct{}

func (headerLengthRule) ID() string { return "header-length" }

func (headerLengthRule) Check(parsed ParsedMessage, cfg *Config) []Violation {
	header := parsed.RawHeader()
	if len(header) <= cfg.MaxHeaderLength {
		return nil
	}
	return errorViolation("header-length", fmt.Sprintf(
		"header length exceeds maximum allowed characters (max: %d, current: %d)",
		cfg.MaxHeaderLength, len(header)))
}

// breakingChangeConsistencyRule checks BREAKING CHANGE footers. The "!"
// marker and the footer are each sufficient on their own to signal a
// breaking change; neither requires the other. The only constraint is
// that a BREAKING CHANGE footer must carry a non-empty value.
type breakingChangeConsistencyRule struct{}

func (breakingChangeConsistencyRule) ID() string { return "breaking-change-consistency" }

func (breakingChangeConsistencyRule) Check(parsed ParsedMessage, _ *Config) []Violation {
	msg, ok := parsed.(*Message)
	if !ok {
		return nil
	}
	for _, footer := range msg.Footers {
		if footer.IsBreaking() && strings.TrimSpace(footer.Value) == "" {
			return errorViolation("breaking-change-consistency",
				"BREAKING CHANGE footer must have a description")
		}
	}
	return nil
}
