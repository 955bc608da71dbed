// Package git supplies raw commit messages to the evaluator. It is the
// only part of the tool that touches a repository or the filesystem for
// message input; the lint core consumes plain strings.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// scissorsLine marks the start of the verbose-commit diff that git
// appends below the message. Everything from this line on is discarded.
const scissorsLine = "# ------------------------ >8 ------------------------"

// Source yields the ordered raw commit messages for one lint run.
type Source interface {
	Messages(ctx context.Context) ([]string, error)
}

// MessageSource wraps a message given directly on the command line.
type MessageSource struct {
	Message string
}

func (s MessageSource) Messages(context.Context) ([]string, error) {
	return []string{strings.TrimSpace(s.Message)}, nil
}

// FileSource reads a commit message file, as written by git for the
// commit-msg hook. Comment lines and the scissors diff are stripped
// before evaluation.
type FileSource struct {
	Fs   afero.Fs
	Path string
}

func (s FileSource) Messages(context.Context) ([]string, error) {
	data, err := afero.ReadFile(s.Fs, s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit message file %s: %w", s.Path, err)
	}
	return []string{StripComments(string(data))}, nil
}

// StripComments removes git comment lines and the scissors diff from a
// commit message file's contents.
func StripComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.HasPrefix(line, scissorsLine) {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// HashSource yields the message of a single commit.
type HashSource struct {
	Repo *Repository
	Rev  string
}

func (s HashSource) Messages(ctx context.Context) ([]string, error) {
	msg, err := s.Repo.MessageOf(ctx, s.Rev)
	if err != nil {
		return nil, err
	}
	return []string{msg}, nil
}

// RangeSource yields the messages of every commit reachable from To but
// not from From, newest first. These are the commits a pull request adds.
type RangeSource struct {
	Repo *Repository
	From string
	To   string
}

func (s RangeSource) Messages(ctx context.Context) ([]string, error) {
	return s.Repo.MessagesBetween(ctx, s.From, s.To)
}
