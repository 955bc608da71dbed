package git

import (
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlint-go/commitlint/internal/testutil"
)

// initTestRepo creates a repository with the given commit messages, in
// order, and returns it together with the commit hashes.
func initTestRepo(t *testing.T, messages ...string) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	var hashes []string
	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		hash, err := wt.Commit(msg, &gogit.CommitOptions{
			AllowEmptyCommits: true,
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "test@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		require.NoError(t, err)
		hashes = append(hashes, hash.String())
	}

	return dir, hashes
}

func TestOpenMissingRepository(t *testing.T) {
	t.Parallel()

	_, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestMessageOf(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	dir, hashes := initTestRepo(t, "feat: add login\n", "fix: handle timeout")

	repo, err := Open(dir)
	require.NoError(t, err)

	msg, err := repo.MessageOf(ctx, hashes[0])
	require.NoError(t, err)
	assert.Equal(t, "feat: add login", msg)

	head, err := repo.MessageOf(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "fix: handle timeout", head)
}

func TestMessageOfUnknownRevision(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	dir, _ := initTestRepo(t, "feat: add login")

	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.MessageOf(ctx, "0000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestMessagesBetween(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	dir, hashes := initTestRepo(t,
		"feat: initial",
		"fix: second change",
		"docs: third change",
	)

	repo, err := Open(dir)
	require.NoError(t, err)

	messages, err := repo.MessagesBetween(ctx, hashes[0], "HEAD")
	require.NoError(t, err)

	// Newest first, range start excluded.
	assert.Equal(t, []string{"docs: third change", "fix: second change"}, messages)
}

func TestMessagesBetweenNotAnAncestor(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	dir, hashes := initTestRepo(t, "feat: initial", "fix: second change")

	repo, err := Open(dir)
	require.NoError(t, err)

	// Reversed range: HEAD is not reachable from the first commit.
	_, err = repo.MessagesBetween(ctx, "HEAD", hashes[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAncestor)
}
