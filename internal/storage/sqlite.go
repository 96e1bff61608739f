// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one persisted session summary.
type SessionRecord struct {
	ID        int64
	GameID    string
	Reason    string
	Score     int
	Level     int
	Progress  float64
	Warnings  int
	Remaining int
	Duration  time.Duration
	CreatedAt time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			reason TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			progress REAL NOT NULL DEFAULT 0,
			warnings INTEGER NOT NULL DEFAULT 0,
			remaining INTEGER NOT NULL DEFAULT -1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC);
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

// SaveSession records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveSession(sum sim.Summary) (int64, error) {
	if sum.GameID == "" {
		return 0, errors.New("storage: session without game id")
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions (game_id, reason, score, level, progress, warnings, remaining, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.GameID, sum.Reason.String(), sum.Score, sum.Level, sum.Progress,
		sum.Warnings, sum.Remaining, sum.Duration.Milliseconds(),
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

// Recorder returns a session-end hook that saves every summary.
// Failures are logged and never interrupt the game.
func (s *Store) Recorder(logger *log.Logger) func(sim.Summary) {
	return func(sum sim.Summary) {
		if _, err := s.SaveSession(sum); err != nil {
			logger.Warn("could not save session", "game", sum.GameID, "err", err)
		}
	}
}

const selectSession = `SELECT id, game_id, reason, score, level, progress, warnings, remaining, duration_ms, created_at FROM sessions`

// TopScores retrieves the top N sessions for the given game by score.
func (s *Store) TopScores(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectSession+` WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// RecentSessions retrieves the latest sessions, newest first.
// An empty gameID lists every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if gameID == "" {
		return s.query(selectSession+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	}
	return s.query(selectSession+` WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`, gameID, limit)
}

func (s *Store) query(q string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			r         SessionRecord
			durMs     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Reason, &r.Score, &r.Level, &r.Progress,
			&r.Warnings, &r.Remaining, &durMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all sessions for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	Losses     int // sessions ended by a hazard or the warnings cap
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(SUM(CASE WHEN reason IN (?, ?) THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		sim.ReasonHazard.String(), sim.ReasonWarnings.String(), gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestLevel, &stats.Losses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(level),
		        SUM(CASE WHEN reason IN (?, ?) THEN 1 ELSE 0 END), MAX(created_at)
		 FROM sessions
		 GROUP BY game_id`,
		sim.ReasonHazard.String(), sim.ReasonWarnings.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
			&gs.BestLevel, &gs.Losses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
