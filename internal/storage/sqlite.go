// Package storage provides SQLite-based persistence for finished rounds and
// the statistics derived from them.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// Round is a single finished round.
type Round struct {
	ID          string // Round UUID from the engine
	Player      string
	Mode        string
	Target      string
	Attempts    int
	MaxAttempts int
	Won         bool
	Guesses     []string
	FinishedAt  time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			target TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			max_attempts INTEGER NOT NULL,
			won INTEGER NOT NULL,
			guesses TEXT NOT NULL DEFAULT '',
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode, finished_at);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player, mode, finished_at);
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

// SaveRound records a finished round.
// Saving the same round ID twice is a no-op; it reports whether a row was inserted.
func (s *Store) SaveRound(r Round) (bool, error) {
	if r.ID == "" {
		return false, fmt.Errorf("storage: cannot save round: empty id")
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO rounds
		 (id, player, mode, target, attempts, max_attempts, won, guesses, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Mode, r.Target, r.Attempts, r.MaxAttempts,
		boolToInt(r.Won), strings.Join(r.Guesses, ","), r.FinishedAt.UnixNano(),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save round: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// RecentRounds retrieves the most recent rounds for a mode, newest first.
// An empty player matches every player.
func (s *Store) RecentRounds(mode, player string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, mode, target, attempts, max_attempts, won, guesses, finished_at
		 FROM rounds
		 WHERE mode = ? AND (? = '' OR player = ?)
		 ORDER BY finished_at DESC
		 LIMIT ?`,
		mode, player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// ClearRounds deletes recorded rounds. An empty mode or player matches all.
func (s *Store) ClearRounds(mode, player string) error {
	_, err := s.db.Exec(
		"DELETE FROM rounds WHERE (? = '' OR mode = ?) AND (? = '' OR player = ?)",
		mode, mode, player, player,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Players lists every player that has a recorded round, sorted by name.
func (s *Store) Players() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT player FROM rounds ORDER BY player")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	var rounds []Round
	for rows.Next() {
		var (
			r       Round
			won     int
			guesses string
			nanos   int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Mode, &r.Target, &r.Attempts,
			&r.MaxAttempts, &won, &guesses, &nanos); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		r.FinishedAt = time.Unix(0, nanos)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
