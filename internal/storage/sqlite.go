// Package storage provides SQLite-based persistence for session recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// Recording is a replayable session: the seed plus one packed input frame per tick.
// Replaying Inputs against a game reset with Seed reproduces the session exactly.
type Recording struct {
	ID         int64
	GameID     string
	Player     string // Local user or SSH user name
	Seed       int64
	TickRate   int
	Ticks      int
	FinalScore int // Score on the last recorded tick
	BestScore  int // Highest score seen during the session
	Inputs     []byte
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over a game's recordings.
type Stats struct {
	GameID     string
	Count      int
	BestScore  int
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			inputs BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_game_id ON recordings(game_id);
		CREATE INDEX IF NOT EXISTS idx_recordings_best ON recordings(game_id, best_score DESC);
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

// SaveRecording stores a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRecording(rec Recording) (int64, error) {
	if rec.Ticks != len(rec.Inputs) {
		return 0, fmt.Errorf("storage: recording has %d ticks but %d input frames", rec.Ticks, len(rec.Inputs))
	}
	if rec.Inputs == nil {
		rec.Inputs = []byte{}
	}

	result, err := s.db.Exec(
		`INSERT INTO recordings
		 (game_id, player, seed, tick_rate, ticks, final_score, best_score, inputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Player, rec.Seed, rec.TickRate, rec.Ticks, rec.FinalScore, rec.BestScore, rec.Inputs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recording retrieves a recording with its inputs.
// Returns nil without an error if no recording has the given ID.
func (s *Store) Recording(id int64) (*Recording, error) {
	var rec Recording
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, player, seed, tick_rate, ticks, final_score, best_score, inputs, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.GameID,
		&rec.Player,
		&rec.Seed,
		&rec.TickRate,
		&rec.Ticks,
		&rec.FinalScore,
		&rec.BestScore,
		&rec.Inputs,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// ListRecordings returns the newest recordings for a game without their inputs.
func (s *Store) ListRecordings(gameID string, limit int) ([]Recording, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, tick_rate, ticks, final_score, best_score, created_at
		 FROM recordings
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var recs []Recording
	for rows.Next() {
		var rec Recording
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.GameID,
			&rec.Player,
			&rec.Seed,
			&rec.TickRate,
			&rec.Ticks,
			&rec.FinalScore,
			&rec.BestScore,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// DeleteRecording removes a recording. Deleting a missing ID is not an error.
func (s *Store) DeleteRecording(id int64) error {
	if _, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	return nil
}

// GameStats aggregates all recordings of a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(best_score), 0), COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM recordings WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Count, &stats.BestScore, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
