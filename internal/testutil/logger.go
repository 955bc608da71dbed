// Package testutil holds shared helpers for the package tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/commitlint-go/commitlint/internal/logging"
)

// NewTestContext creates a context with a logger writing to an in-memory
// buffer. The returned function retrieves the captured log output.
func NewTestContext(t *testing.T) (ctx context.Context, getLogOutput func() string) {
	t.Helper()

	var logOutput strings.Builder
	syncWriter := zerolog.SyncWriter(&logOutput)

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		RepoPath: "test-repo",
		Writer:   syncWriter,
		Level:    zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, logOutput.String
}
