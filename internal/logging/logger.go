// Package logging attaches a zerolog logger to the context. Console
// output belongs to the reporter; these logs are diagnostics only and
// rotate in the XDG data directory.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/commitlint-go/commitlint/internal/storage"
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation.
type Config struct {
	// Writer overrides file logging, typically with an in-memory buffer
	// in tests. When nil, logs go to a rotated file in the data dir.
	Writer io.Writer

	// RepoPath tags every event with the repository being linted.
	RepoPath string

	Level      zerolog.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a new context with a logger attached.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	writer := config.Writer
	if writer == nil {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).LogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("repo", config.RepoPath).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context, or a disabled
// logger if none is attached.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
