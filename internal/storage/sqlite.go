// Package storage provides SQLite-based persistence for shootout results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkazakov/tui-shootout/internal/registry"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// MatchEntry represents one played shootout match.
type MatchEntry struct {
	ID        int64
	Saves     int
	Goals     int
	Finished  bool
	CreatedAt time.Time
}

// RoundEntry represents a single round outcome within a match.
type RoundEntry struct {
	ID       int64
	MatchID  int64
	Round    int
	Success  bool
	ShotType string
	SaveType string
}

// SaveTypeStat is an aggregated per-save-type count across all matches.
type SaveTypeStat struct {
	SaveType string
	Count    int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			saves INTEGER NOT NULL DEFAULT 0,
			goals INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_top ON matches(finished, saves DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id INTEGER NOT NULL REFERENCES matches(id),
			round INTEGER NOT NULL,
			success INTEGER NOT NULL,
			shot_type TEXT NOT NULL,
			save_type TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_match ON rounds(match_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_save_type ON rounds(save_type);
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

// StartMatch creates a new match record and returns its ID.
// Round outcomes recorded against this ID update its running totals.
func (s *Store) StartMatch() (int64, error) {
	result, err := s.db.Exec("INSERT INTO matches (saves, goals) VALUES (0, 0)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRound persists one round outcome and folds it into the match totals.
func (s *Store) RecordRound(matchID int64, r registry.RoundReport) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO rounds (match_id, round, success, shot_type, save_type) VALUES (?, ?, ?, ?, ?)",
		matchID, r.Round, r.Success, r.ShotType, r.SaveType,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}

	column := "goals"
	if r.Success {
		column = "saves"
	}
	_, err = tx.Exec("UPDATE matches SET "+column+" = "+column+" + 1 WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("storage: cannot update match totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return nil
}

// FinishMatch marks the match as completed so it ranks on the scoreboard.
func (s *Store) FinishMatch(matchID int64) error {
	_, err := s.db.Exec("UPDATE matches SET finished = 1 WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("storage: cannot finish match: %w", err)
	}
	return nil
}

// TopMatches retrieves the best finished matches, ordered by saves descending.
func (s *Store) TopMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, saves, goals, finished, created_at
		 FROM matches
		 WHERE finished = 1
		 ORDER BY saves DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		e, err := scanMatch(rows)
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

// BestSaves returns the highest save count among finished matches.
// Returns 0 if no matches exist.
func (s *Store) BestSaves() (int, error) {
	var saves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(saves) FROM matches WHERE finished = 1",
	).Scan(&saves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best saves: %w", err)
	}

	if !saves.Valid {
		return 0, nil
	}

	return int(saves.Int64), nil
}

// MatchRounds retrieves the round outcomes of one match in round order.
func (s *Store) MatchRounds(matchID int64) ([]RoundEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, round, success, shot_type, save_type
		 FROM rounds
		 WHERE match_id = ?
		 ORDER BY round`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		if err := rows.Scan(&e.ID, &e.MatchID, &e.Round, &e.Success, &e.ShotType, &e.SaveType); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SaveTypeBreakdown aggregates successful rounds by save type across all
// matches, most frequent first.
func (s *Store) SaveTypeBreakdown() ([]SaveTypeStat, error) {
	rows, err := s.db.Query(
		`SELECT save_type, COUNT(*)
		 FROM rounds
		 WHERE success = 1
		 GROUP BY save_type
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save breakdown: %w", err)
	}
	defer rows.Close()

	var stats []SaveTypeStat
	for rows.Next() {
		var st SaveTypeStat
		if err := rows.Scan(&st.SaveType, &st.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all match and round records.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// scanMatch reads one matches row, tolerating both time.Time and string
// datetime representations from the driver.
func scanMatch(rows *sql.Rows) (MatchEntry, error) {
	var e MatchEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Saves, &e.Goals, &e.Finished, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
