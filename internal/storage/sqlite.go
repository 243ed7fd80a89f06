// Package storage provides SQLite-based persistence for engine run sessions.
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

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one recorded run of a scene.
type Session struct {
	ID         int64
	SceneID    string
	Frames     int64
	AvgFrameMS float64
	Framerate  float64 // Last measured frames per second
	Duration   time.Duration
	ExitReason string // "quit", "init_failed", "error"
	Backend    string // "tui", "console" or "headless"
	CreatedAt  time.Time
}

// SceneStats contains aggregated statistics for a scene.
type SceneStats struct {
	SceneID       string
	Runs          int
	TotalFrames   int64
	AvgFramerate  float64
	BestFramerate float64
	TotalDuration time.Duration
	LastPlayed    time.Time
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

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.ExitReason == "" {
		sess.ExitReason = "quit"
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions (scene_id, frames, avg_frame_ms, framerate, duration_ms, exit_reason, backend)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.SceneID, sess.Frames, sess.AvgFrameMS, sess.Framerate, sess.Duration.Milliseconds(), sess.ExitReason, sess.Backend,
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

// RecentSessions retrieves the newest sessions, newest first.
// An empty sceneID matches every scene.
func (s *Store) RecentSessions(sceneID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, frames, avg_frame_ms, framerate, duration_ms, exit_reason, backend, created_at
		 FROM sessions
		 WHERE ? = '' OR scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.SceneID, &sess.Frames, &sess.AvgFrameMS,
			&sess.Framerate, &durationMS, &sess.ExitReason, &sess.Backend, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SceneStats retrieves aggregated statistics for a specific scene.
// A scene that was never run yields zero stats.
func (s *Store) SceneStats(sceneID string) (*SceneStats, error) {
	stats := &SceneStats{SceneID: sceneID}

	var durationMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(AVG(framerate), 0),
		        COALESCE(MAX(framerate), 0), COALESCE(SUM(duration_ms), 0)
		 FROM sessions WHERE scene_id = ?`,
		sceneID,
	).Scan(&stats.Runs, &stats.TotalFrames, &stats.AvgFramerate, &stats.BestFramerate, &durationMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	stats.TotalDuration = time.Duration(durationMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE scene_id = ? ORDER BY id DESC LIMIT 1`,
		sceneID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes all sessions for the given scene, or every session
// when sceneID is empty.
func (s *Store) ClearSessions(sceneID string) error {
	var err error
	if sceneID == "" {
		_, err = s.db.Exec("DELETE FROM sessions")
	} else {
		_, err = s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
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
