// Package store persists evaluation runs in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gokaykeskin/duygu"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// A Run is one persisted evaluation run.
type Run struct {
	Dataset   string
	Cases     int
	TP        int
	TN        int
	FP        int
	FN        int
	Metrics   duygu.Metrics
	Wrong     []duygu.Prediction
	CreatedAt time.Time
}

// Open opens or creates the run database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_timeout=5000&_fk=on", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Single writer keeps SQLite happy.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveRun stores the run and its wrong predictions atomically, returning the
// new run's id.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (created_at, dataset, cases, tp, tn, fp, fn, accuracy, precision, recall, f1)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.UTC().Format(time.RFC3339), run.Dataset, run.Cases,
		run.TP, run.TN, run.FP, run.FN,
		run.Metrics.Accuracy, run.Metrics.Precision, run.Metrics.Recall, run.Metrics.F1)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, wp := range run.Wrong {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO wrong_predictions (run_id, sentence, true_label, predicted, confidence)
			VALUES (?, ?, ?, ?, ?)`,
			runID, wp.Text, string(wp.TrueLabel), string(wp.Predicted), wp.Confidence); err != nil {
			return 0, fmt.Errorf("inserting wrong prediction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns stored runs, newest first, without their prediction
// lists.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT created_at, dataset, cases, tp, tn, fp, fn, accuracy, precision, recall, f1
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&created, &r.Dataset, &r.Cases, &r.TP, &r.TN, &r.FP, &r.FN,
			&r.Metrics.Accuracy, &r.Metrics.Precision, &r.Metrics.Recall, &r.Metrics.F1); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
