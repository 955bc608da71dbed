package main

import (
	"errors"
	"fmt"
	"os"
)

// LintExitError carries the exit code for a failed validation so that
// lint failures exit non-zero without being printed as runtime errors.
type LintExitError struct {
	Message string
	Code    int
}

func (e *LintExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(); err != nil {
		var lintErr *LintExitError
		if errors.As(err, &lintErr) {
			os.Exit(lintErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := createRootCommand().Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
