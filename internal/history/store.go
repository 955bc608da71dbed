// Package history records past lint runs in a SQLite database in the
// XDG data directory. Recording is best-effort: commands log and carry
// on when the store is unavailable.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/commitlint-go/commitlint/internal/lint"
)

// Store persists lint run results.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the history database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db}
	if err := store.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close history database: %w", err)
		}
	}
	return nil
}

// Run is one recorded lint invocation.
type Run struct {
	RecordedAt time.Time
	Source     string
	ID         int64
	Total      int
	Failed     int
	Valid      bool
}

// RecordRun stores the outcome of one lint run, including the violations
// of every failed commit.
func (s *Store) RecordRun(ctx context.Context, source string, report lint.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO runs (source, total, failed, valid) VALUES (?, ?, ?, ?)",
		source, report.Total, report.FailedCount(), report.Valid)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, verdict := range report.Failed {
		for _, violation := range verdict.Violations {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO violations (run_id, header, rule_id, message) VALUES (?, ?, ?, ?)",
				runID, verdict.Header, violation.RuleID, violation.Message); err != nil {
				_ = tx.Rollback()
				return 0, fmt.Errorf("failed to insert violation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, recorded_at, source, total, failed, valid FROM runs ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var recordedAt int64
		if err := rows.Scan(&run.ID, &recordedAt, &run.Source, &run.Total, &run.Failed, &run.Valid); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.RecordedAt = time.Unix(recordedAt, 0).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// RunViolation is one stored violation of a recorded run.
type RunViolation struct {
	Header  string
	RuleID  string
	Message string
}

// Violations returns the stored violations of one run in insertion order.
func (s *Store) Violations(ctx context.Context, runID int64) ([]RunViolation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT header, rule_id, message FROM violations WHERE run_id = ? ORDER BY id",
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}
	defer rows.Close()

	var violations []RunViolation
	for rows.Next() {
		var v RunViolation
		if err := rows.Scan(&v.Header, &v.RuleID, &v.Message); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate violations: %w", err)
	}
	return violations, nil
}
