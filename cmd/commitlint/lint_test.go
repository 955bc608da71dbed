package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLintTest runs the command in an isolated working directory with a
// private XDG data home so logs and history never touch the real one.
// Tests using it cannot run in parallel.
func setupLintTest(t *testing.T) string {
	t.Helper()

	color.NoColor = true

	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	repoRoot := t.TempDir()
	t.Chdir(repoRoot)

	return repoRoot
}

func executeCommand(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd := createRootCommand()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestLintValidMessage(t *testing.T) {
	setupLintTest(t)

	output, err := executeCommand("lint", "feat: add login")
	require.NoError(t, err)
	assert.Contains(t, output, "Commit validation: successful!")
}

func TestLintInvalidMessage(t *testing.T) {
	setupLintTest(t)

	output, err := executeCommand("lint", "Added login")

	var lintErr *LintExitError
	require.ErrorAs(t, err, &lintErr)
	assert.Equal(t, 1, lintErr.Code)

	assert.Contains(t, output, "⧗ Input:\nAdded login")
	assert.Contains(t, output, "✖ Found 1 error(s).")
	assert.Contains(t, output, "[header-parseable]")
}

func TestLintQuietSuppressesOutput(t *testing.T) {
	setupLintTest(t)

	output, err := executeCommand("lint", "--quiet", "Added login")

	var lintErr *LintExitError
	require.ErrorAs(t, err, &lintErr)
	assert.Equal(t, 1, lintErr.Code)
	assert.Empty(t, output)
}

func TestLintFromFile(t *testing.T) {
	repoRoot := setupLintTest(t)

	msgPath := filepath.Join(repoRoot, "COMMIT_EDITMSG")
	message := "fix: handle empty scope\n\n# Please enter the commit message for your changes.\n"
	require.NoError(t, os.WriteFile(msgPath, []byte(message), 0o600))

	output, err := executeCommand("lint", "--file", msgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Commit validation: successful!")
}

func TestLintMaxHeaderLengthOverride(t *testing.T) {
	setupLintTest(t)

	output, err := executeCommand("lint", "--max-header-length", "10", "feat: add login")

	var lintErr *LintExitError
	require.ErrorAs(t, err, &lintErr)
	assert.Contains(t, output, "[header-length]")
}

func TestLintRequiresSource(t *testing.T) {
	setupLintTest(t)

	_, err := executeCommand("lint")
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*LintExitError)))
	assert.Contains(t, err.Error(), "a commit message, --file, --hash, or --from is required")
}

func TestLintReadsConfigFile(t *testing.T) {
	repoRoot := setupLintTest(t)

	configYAML := "types:\n  - feat\n"
	require.NoError(t, os.WriteFile(filepath.Join(repoRoot, ".commitlint.yaml"),
		[]byte(configYAML), 0o600))

	output, err := executeCommand("lint", "docs: explain the hook")

	var lintErr *LintExitError
	require.ErrorAs(t, err, &lintErr)
	assert.Contains(t, output, "[type-valid]")
}

func TestHookCommandValidatesMessageFile(t *testing.T) {
	repoRoot := setupLintTest(t)

	msgPath := filepath.Join(repoRoot, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(msgPath, []byte("chore: tidy imports\n"), 0o600))

	output, err := executeCommand("hook", msgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Commit validation: successful!")
}
