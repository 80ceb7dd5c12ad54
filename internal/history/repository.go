package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS segments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		started_at TEXT NOT NULL,
		stopped_at TEXT NOT NULL,
		elapsed INTEGER NOT NULL,
		remaining_after INTEGER NOT NULL
	)
	`
	if _, err := r.db.Exec(query); err != nil {
		return err
	}

	_, err := r.db.Exec("CREATE INDEX IF NOT EXISTS segments_session ON segments(session_id)")
	return err
}

func (r *Repository) Create(s *Segment) error {
	result, err := r.db.Exec(
		"INSERT INTO segments (session_id, started_at, stopped_at, elapsed, remaining_after) VALUES (?, ?, ?, ?, ?)",
		s.SessionID,
		s.StartedAt.Format(time.RFC3339Nano),
		s.StoppedAt.Format(time.RFC3339Nano),
		int64(s.Elapsed),
		int64(s.RemainingAfter),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetBySession returns a session's segments in the order they ran.
func (r *Repository) GetBySession(sessionID string) ([]Segment, error) {
	rows, err := r.db.Query(
		"SELECT id, session_id, started_at, stopped_at, elapsed, remaining_after FROM segments WHERE session_id = ? ORDER BY id ASC",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSegments(rows)
}

// GetRecent returns up to limit segments, newest first. A limit of
// zero or less returns all of them.
func (r *Repository) GetRecent(limit int) ([]Segment, error) {
	query := "SELECT id, session_id, started_at, stopped_at, elapsed, remaining_after FROM segments ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSegments(rows)
}

func scanSegments(rows *sql.Rows) ([]Segment, error) {
	var segments []Segment
	for rows.Next() {
		var s Segment
		var startedAt, stoppedAt string
		var elapsed, remaining int64
		if err := rows.Scan(&s.ID, &s.SessionID, &startedAt, &stoppedAt, &elapsed, &remaining); err != nil {
			return nil, err
		}
		var err error
		if s.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("segment %d: bad started_at: %w", s.ID, err)
		}
		if s.StoppedAt, err = time.Parse(time.RFC3339Nano, stoppedAt); err != nil {
			return nil, fmt.Errorf("segment %d: bad stopped_at: %w", s.ID, err)
		}
		s.Elapsed = time.Duration(elapsed)
		s.RemainingAfter = time.Duration(remaining)
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
