// Package project provides utilities for detecting the repository root.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot finds the repository root directory by walking up from the
// current working directory until a .git entry is found. Falls back to
// the working directory itself when no marker exists.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindRootFrom(cwd); found {
		return root, nil
	}
	return cwd, nil
}

// FindRootFrom finds the repository root starting from the given
// directory.
func FindRootFrom(startDir string) (string, bool) {
	currentDir := startDir
	for {
		// .git may be a directory or, in worktrees, a file.
		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", false
}
