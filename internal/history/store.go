// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists past check runs in a local SQLite database so
// repeated checks of a manuscript can be compared over time.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citecheck/pkg/types"
)

const dbFile = "checks.db"

// Store manages the check-history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// Run is one recorded check.
type Run struct {
	ID             int64
	Path           string
	CheckedAt      time.Time
	Citations      int
	Entries        int
	Missing        int
	Uncited        int
	Mismatches     int
	NoBibliography bool
}

// Issue is one recorded inconsistency belonging to a run.
type Issue struct {
	Category string // "missing", "uncited", or "mismatch"
	Detail   string
	Position int
}

// NewStore opens or creates the history database at dir/checks.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = 20
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			checked_at TEXT NOT NULL,
			citations INTEGER NOT NULL,
			entries INTEGER NOT NULL,
			missing INTEGER NOT NULL,
			uncited INTEGER NOT NULL,
			mismatches INTEGER NOT NULL,
			no_bibliography INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS issues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			category TEXT NOT NULL,
			detail TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_issues_run_id ON issues(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one check run and its issues, returning the run ID.
func (s *Store) Record(ctx context.Context, path string, r types.CheckResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (path, checked_at, citations, entries, missing, uncited, mismatches, no_bibliography)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		path, time.Now().UTC().Format(time.RFC3339),
		len(r.Citations), len(r.Entries),
		len(r.Missing), len(r.Uncited), len(r.Mismatches),
		boolToInt(r.NoBibliography))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	insert := func(category, detail string, position int) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO issues (run_id, category, detail, position) VALUES (?, ?, ?, ?)`,
			runID, category, detail, position)
		return err
	}
	for _, c := range r.Missing {
		if err := insert("missing", c.Raw, c.Pos); err != nil {
			return 0, fmt.Errorf("inserting missing issue: %w", err)
		}
	}
	for _, e := range r.Uncited {
		if err := insert("uncited", e.Label(), e.Pos); err != nil {
			return 0, fmt.Errorf("inserting uncited issue: %w", err)
		}
	}
	for _, m := range r.Mismatches {
		detail := fmt.Sprintf("%s vs %s (year: %d)", m.Citation.Raw, m.Entry.Label(), m.Entry.Year)
		if err := insert("mismatch", detail, m.Citation.Pos); err != nil {
			return 0, fmt.Errorf("inserting mismatch issue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, checked_at, citations, entries, missing, uncited, mismatches, no_bibliography
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var checkedAt string
		var noBib int
		if err := rows.Scan(&r.ID, &r.Path, &checkedAt, &r.Citations, &r.Entries,
			&r.Missing, &r.Uncited, &r.Mismatches, &noBib); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CheckedAt, _ = time.Parse(time.RFC3339, checkedAt)
		r.NoBibliography = noBib != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Issues returns the recorded inconsistencies of one run, in the order
// they were classified.
func (s *Store) Issues(ctx context.Context, runID int64) ([]Issue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, detail, position FROM issues WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var i Issue
		if err := rows.Scan(&i.Category, &i.Detail, &i.Position); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
