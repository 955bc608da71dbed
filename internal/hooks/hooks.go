// Package hooks manages the git commit-msg hook that runs commitlint on
// every local commit.
package hooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// hookMarker identifies hooks written by this tool so that foreign
	// hooks are never silently overwritten or removed.
	hookMarker = "# installed by commitlint"

	hookScript = "#!/bin/sh\n" + hookMarker + "\nexec commitlint hook \"$1\"\n"

	hookName = "commit-msg"
)

// ErrForeignHook is returned when a commit-msg hook exists that was not
// written by commitlint.
var ErrForeignHook = errors.New("a commit-msg hook not managed by commitlint already exists")

// Status describes the state of the commit-msg hook in a repository.
type Status int

const (
	StatusNotInstalled Status = iota
	StatusInstalled
	StatusForeign
)

// HookPath returns the path of the commit-msg hook for a repository root.
func HookPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", "hooks", hookName)
}

// Install writes the commit-msg hook into the repository. An existing
// commitlint hook is rewritten; a foreign hook is only replaced when
// force is set.
func Install(fs afero.Fs, repoRoot string, force bool) error {
	status, err := Check(fs, repoRoot)
	if err != nil {
		return err
	}
	if status == StatusForeign && !force {
		return ErrForeignHook
	}

	hooksDir := filepath.Dir(HookPath(repoRoot))
	if err := fs.MkdirAll(hooksDir, 0o750); err != nil {
		return fmt.Errorf("failed to create hooks directory %s: %w", hooksDir, err)
	}

	if err := afero.WriteFile(fs, HookPath(repoRoot), []byte(hookScript), 0o750); err != nil {
		return fmt.Errorf("failed to write commit-msg hook: %w", err)
	}
	return nil
}

// Uninstall removes the commit-msg hook if commitlint installed it.
// Foreign hooks are left in place.
func Uninstall(fs afero.Fs, repoRoot string) error {
	status, err := Check(fs, repoRoot)
	if err != nil {
		return err
	}
	switch status {
	case StatusNotInstalled:
		return nil
	case StatusForeign:
		return ErrForeignHook
	}

	if err := fs.Remove(HookPath(repoRoot)); err != nil {
		return fmt.Errorf("failed to remove commit-msg hook: %w", err)
	}
	return nil
}

// Check reports whether the repository has a commit-msg hook and whether
// commitlint owns it.
func Check(fs afero.Fs, repoRoot string) (Status, error) {
	data, err := afero.ReadFile(fs, HookPath(repoRoot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StatusNotInstalled, nil
		}
		return StatusNotInstalled, fmt.Errorf("failed to read commit-msg hook: %w", err)
	}

	if strings.Contains(string(data), hookMarker) {
		return StatusInstalled, nil
	}
	return StatusForeign, nil
}
