// Package audit persists a per-execution audit trail to sqlite. It observes
// the event bus; recording is a side effect of execution and never changes
// an execution's Result.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS executions (
	id          TEXT PRIMARY KEY,
	skill       TEXT NOT NULL,
	success     INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL,
	finished_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_executions_finished_at ON executions(finished_at);
`

// Entry is one recorded execution.
type Entry struct {
	ID         string
	Skill      string
	Success    bool
	Error      string
	Duration   time.Duration
	FinishedAt time.Time
}

// Store is the sqlite-backed execution log.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and its parent directory) if needed and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init audit schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one execution row.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO executions (id, skill, success, error, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Skill, boolToInt(e.Success), e.Error, e.Duration.Milliseconds(), e.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record execution: %w", err)
	}
	return nil
}

// Recent returns up to limit executions, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, skill, success, error, duration_ms, finished_at
		 FROM executions ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query executions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			success    int
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &e.Skill, &success, &e.Error, &durationMS, &e.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan execution: %w", err)
		}
		e.Success = success != 0
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
