// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flyer/internal/game"
	"github.com/vovakirdan/tui-flyer/internal/runner"
)

// ErrRunNotFound is returned when a run ID is not in the database.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run traces.
type Store struct {
	db *sql.DB
}

// RunEntry is the header of a recorded run.
type RunEntry struct {
	ID         uuid.UUID
	Pilot      string
	Seed       int64
	Ticks      int
	Score      uint32
	Died       bool
	ConfigYAML []byte // Effective configuration the run was recorded with
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			pilot TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			died INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS frames (
			run_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			flyer_x REAL NOT NULL,
			flyer_y REAL NOT NULL,
			velocity_y REAL NOT NULL,
			barriers INTEGER NOT NULL,
			head_x REAL NOT NULL,
			score INTEGER NOT NULL,
			state INTEGER NOT NULL,
			PRIMARY KEY (run_id, tick)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and all of its frames in one transaction.
// Returns the ID assigned to the run.
func (s *Store) SaveRun(res runner.Result, configYAML []byte) (uuid.UUID, error) {
	id := uuid.New()

	tx, err := s.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	_, err = tx.Exec(
		`INSERT INTO runs (id, pilot, seed, ticks, score, died, config_yaml)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), res.Pilot, res.Seed, res.Ticks, res.Score, res.Died, string(configYAML),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO frames (run_id, tick, flyer_x, flyer_y, velocity_y, barriers, head_x, score, state)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range res.Frames {
		if _, err := stmt.Exec(
			id.String(), f.Tick, f.FlyerX, f.FlyerY, f.VelocityY,
			f.Barriers, f.HeadX, f.Score, int(f.State),
		); err != nil {
			return uuid.Nil, fmt.Errorf("storage: cannot save frame %d: %w", f.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Runs retrieves the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pilot, seed, ticks, score, died, config_yaml, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Run retrieves a single run header by ID.
func (s *Store) Run(id uuid.UUID) (RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, pilot, seed, ticks, score, died, config_yaml, created_at
		 FROM runs
		 WHERE id = ?`,
		id.String(),
	)

	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return e, err
}

// Frames retrieves the recorded frames of a run in tick order.
func (s *Store) Frames(id uuid.UUID) ([]runner.Frame, error) {
	if _, err := s.Run(id); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT tick, flyer_x, flyer_y, velocity_y, barriers, head_x, score, state
		 FROM frames
		 WHERE run_id = ?
		 ORDER BY tick`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []runner.Frame
	for rows.Next() {
		var f runner.Frame
		var state int
		if err := rows.Scan(
			&f.Tick, &f.FlyerX, &f.FlyerY, &f.VelocityY,
			&f.Barriers, &f.HeadX, &f.Score, &state,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		f.State = game.State(state)
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return frames, nil
}

// DeleteRun removes a run and its frames.
func (s *Store) DeleteRun(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if _, err := tx.Exec("DELETE FROM frames WHERE run_id = ?", id.String()); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRun reads one runs row.
func scanRun(sc scanner) (RunEntry, error) {
	var e RunEntry
	var id, cfg string
	var createdAt any
	if err := sc.Scan(&id, &e.Pilot, &e.Seed, &e.Ticks, &e.Score, &e.Died, &cfg, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunEntry{}, err
		}
		return RunEntry{}, fmt.Errorf("storage: cannot scan run: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: corrupt run id %q: %w", id, err)
	}
	e.ID = parsed
	e.ConfigYAML = []byte(cfg)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = t
		}
	}
	return e, nil
}
