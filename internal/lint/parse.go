// Package lint implements conventional commit message parsing and rule
// evaluation. It is a pure library: no I/O, no global state, and every
// function is safe for concurrent use with a shared Config.
package lint

import (
	"regexp"
	"strings"
)

var (
	// headerPattern matches "type(scope)!: description". The scope group
	// accepts empty parens so that scope-empty can report its own
	// diagnostic instead of collapsing into header-parseable.
	headerPattern = regexp.MustCompile(`^(\w+)(\(([^)]*)\))?(!)?: (.+)$`)

	// footerPattern matches one "Key: value" trailer line.
	footerPattern = regexp.MustCompile(`^([\w-]+|BREAKING CHANGE): (.+)$`)
)

// Footer is a single key/value trailer line at the end of a commit message.
type Footer struct {
	Key   string
	Value string
}

// IsBreaking reports whether the footer key marks a breaking change.
// Keys are case-insensitive and both spellings are recognized.
func (f Footer) IsBreaking() bool {
	key := strings.ToUpper(f.Key)
	return key == "BREAKING CHANGE" || key == "BREAKING-CHANGE"
}

// ParsedMessage is the outcome of Parse. Exactly two concrete types
// implement it: *Message for a well-formed header and *MalformedHeader
// when the first line does not match the grammar.
type ParsedMessage interface {
	// RawHeader returns the original first line of the message.
	RawHeader() string

	parsedMessage()
}

// Message is the structured view of a well-formed commit message.
type Message struct {
	Header      string
	Type        string
	Scope       string
	Description string
	Body        string
	Footers     []Footer

	// HasScope distinguishes "feat(): x" from "feat: x" and HasBody
	// distinguishes an absent body from an empty one.
	HasScope bool
	HasBody  bool
	Breaking bool
}

func (m *Message) RawHeader() string { return m.Header }
func (*Message) parsedMessage()      {}

// MalformedHeader marks a message whose first line does not match the
// conventional commit grammar. It is a first-class parse outcome, not an
// error: callers surface it through the header-parseable rule.
type MalformedHeader struct {
	Header string
}

func (m *MalformedHeader) RawHeader() string { return m.Header }
func (*MalformedHeader) parsedMessage()      {}

// Parse splits a raw commit message into its structural parts.
func Parse(raw string) ParsedMessage {
	header, rest := splitHeader(raw)

	match := headerPattern.FindStringSubmatch(strings.TrimSpace(header))
	if match == nil {
		return &MalformedHeader{Header: header}
	}

	msg := &Message{
		Header:      header,
		Type:        match[1],
		Scope:       match[3],
		HasScope:    match[2] != "",
		Breaking:    match[4] == "!",
		Description: match[5],
	}

	body, footers := splitBody(rest)
	msg.Footers = footers
	if body != "" {
		msg.Body = body
		msg.HasBody = true
	}

	return msg
}

// splitHeader separates the first line from the remainder of the message.
func splitHeader(raw string) (header, rest string) {
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		return strings.TrimSuffix(raw[:idx], "\r"), raw[idx+1:]
	}
	return raw, ""
}

// splitBody separates the message remainder into body text and trailing
// footers. Footer detection is best-effort: only the trailing contiguous
// run of lines matching the footer grammar counts, everything above it is
// body. An empty body is reported as "", which Parse maps to absent.
func splitBody(rest string) (string, []Footer) {
	if strings.TrimSpace(rest) == "" {
		return "", nil
	}

	lines := strings.Split(strings.ReplaceAll(rest, "\r\n", "\n"), "\n")

	// Drop the blank separator lines between header and body.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	lines = lines[start:]

	// Walk backwards over the trailing footer run.
	footerStart := len(lines)
	for footerStart > 0 {
		line := lines[footerStart-1]
		if strings.TrimSpace(line) == "" || !footerPattern.MatchString(line) {
			break
		}
		footerStart--
	}

	var footers []Footer
	for _, line := range lines[footerStart:] {
		match := footerPattern.FindStringSubmatch(line)
		footers = append(footers, Footer{Key: match[1], Value: match[2]})
	}

	body := strings.Join(lines[:footerStart], "\n")
	return strings.Trim(body, "\n"), footers
}
