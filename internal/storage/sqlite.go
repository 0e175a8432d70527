// Package storage persists the session configuration file and keeps a
// SQLite archive of every submitted score and finished session.
// The archive uses the pure-Go modernc.org/sqlite driver to avoid CGO.
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

// HistoryFile is the default archive file name inside the data directory.
const HistoryFile = "history.db"

// Outcome values stored with a session record.
const (
	OutcomeGameOver  = "game_over"
	OutcomeAbandoned = "abandoned"
)

// History is the SQLite archive. Unlike the ranked table in the config
// file it is never truncated.
type History struct {
	db *sql.DB
}

// ScoreRecord is one submitted score.
type ScoreRecord struct {
	ID         int64
	Name       string
	Score      int
	Difficulty string
	Character  string
	CreatedAt  time.Time
}

// SessionRecord is one finished or abandoned run.
type SessionRecord struct {
	ID         int64
	Character  string
	Difficulty string
	Score      int
	Duration   time.Duration
	Outcome    string
	CreatedAt  time.Time
}

// Stats aggregates the session archive.
type Stats struct {
	Sessions   int
	Abandoned  int
	BestScore  int
	AvgScore   float64
	PlayTime   time.Duration
	LastPlayed time.Time
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// OpenHistory creates or opens the archive at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenHistory(dbPath string) (*History, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
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

	h := &History{db: db}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return h, nil
}

func (h *History) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			hero TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hero TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := h.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// SaveScore records a submitted score and returns its ID.
func (h *History) SaveScore(r ScoreRecord) (int64, error) {
	result, err := h.db.Exec(
		"INSERT INTO scores (name, score, difficulty, hero) VALUES (?, ?, ?, ?)",
		r.Name, r.Score, r.Difficulty, r.Character,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best archived scores, highest first.
// Equal scores are ordered by submission.
func (h *History) TopScores(limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := h.db.Query(
		`SELECT id, name, score, difficulty, hero, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Difficulty, &r.Character, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RecordSession archives a finished run and returns its ID.
func (h *History) RecordSession(r SessionRecord) (int64, error) {
	if r.Outcome == "" {
		r.Outcome = OutcomeGameOver
	}
	result, err := h.db.Exec(
		`INSERT INTO sessions (hero, difficulty, score, duration_ms, outcome)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Character, r.Difficulty, r.Score, r.Duration.Milliseconds(), r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions returns the latest runs, newest first.
func (h *History) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := h.db.Query(
		`SELECT id, hero, difficulty, score, duration_ms, outcome, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Character, &r.Difficulty, &r.Score, &durationMs, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Stats aggregates every archived session.
func (h *History) Stats() (*Stats, error) {
	stats := &Stats{}
	var playMs int64

	err := h.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM sessions`,
		OutcomeAbandoned,
	).Scan(&stats.Sessions, &stats.Abandoned, &stats.BestScore, &stats.AvgScore, &playMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMs) * time.Millisecond

	var lastPlayed any
	err = h.db.QueryRow(`SELECT created_at FROM sessions ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and the SQLite text format.
func parseTimestamp(v any) time.Time {
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
