package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/commitlint-go/commitlint/internal/logging"
)

// ErrNotAncestor is returned when the start of a commit range is not
// reachable from its end.
var ErrNotAncestor = errors.New("range start is not an ancestor of range end")

// Repository wraps a go-git repository for message retrieval.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository containing path, walking up to find the
// .git directory the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// MessageOf returns the full commit message of the given revision.
// Revisions are resolved the way git does, so hashes, "HEAD" and branch
// names all work.
func (r *Repository) MessageOf(ctx context.Context, rev string) (string, error) {
	commit, err := r.resolveCommit(rev)
	if err != nil {
		return "", err
	}

	logging.Get(ctx).Debug().
		Str("hash", commit.Hash.String()).
		Msg("resolved commit")

	return strings.TrimSpace(commit.Message), nil
}

// MessagesBetween returns the messages of the commits in from..to,
// newest first. from itself is excluded.
func (r *Repository) MessagesBetween(ctx context.Context, from, to string) ([]string, error) {
	fromCommit, err := r.resolveCommit(from)
	if err != nil {
		return nil, err
	}
	toCommit, err := r.resolveCommit(to)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: toCommit.Hash})
	if err != nil {
		return nil, fmt.Errorf("failed to walk repository log: %w", err)
	}
	defer iter.Close()

	var messages []string
	found := false
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == fromCommit.Hash {
			found = true
			return storer.ErrStop
		}
		messages = append(messages, strings.TrimSpace(c.Message))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s..%s", ErrNotAncestor, from, to)
	}

	logging.Get(ctx).Debug().
		Int("count", len(messages)).
		Str("from", fromCommit.Hash.String()).
		Str("to", toCommit.Hash.String()).
		Msg("collected commit range")

	return messages, nil
}

func (r *Repository) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}
	return commit, nil
}
