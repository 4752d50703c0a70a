// Package runstore persists completed motif searches in a SQLite
// database so past results can be listed and retrieved.
package runstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one archived motif search.
type Run struct {
	ID        string
	CreatedAt time.Time
	Motif     string
	Score     float64
	MotifLen  int
	Samples   int
	Sequences int
	SeqLen    int
	Profile   string // formatted profile table
}

// Store is a SQLite-backed archive of runs. Safe for concurrent use.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// New creates an unopened store for the database at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema if needed. Calling Init
// on an initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			motif TEXT NOT NULL,
			score REAL NOT NULL,
			motif_len INTEGER NOT NULL,
			samples INTEGER NOT NULL,
			sequences INTEGER NOT NULL,
			seq_len INTEGER NOT NULL,
			profile TEXT NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun inserts or replaces a run record.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, motif, score, motif_len, samples, sequences, seq_len, profile)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			motif = excluded.motif,
			score = excluded.score,
			motif_len = excluded.motif_len,
			samples = excluded.samples,
			sequences = excluded.sequences,
			seq_len = excluded.seq_len,
			profile = excluded.profile
	`, run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano), run.Motif, run.Score,
		run.MotifLen, run.Samples, run.Sequences, run.SeqLen, run.Profile)
	return err
}

// GetRun fetches a run by id. The second return value reports whether
// the run exists.
func (s *Store) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, created_at, motif, score, motif_len, samples, sequences, seq_len, profile
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	return run, true, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, motif, score, motif_len, samples, sequences, seq_len, profile
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database. A closed store can be re-initialized.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var created string
	if err := row.Scan(&run.ID, &created, &run.Motif, &run.Score,
		&run.MotifLen, &run.Samples, &run.Sequences, &run.SeqLen, &run.Profile); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = t
	return run, nil
}
