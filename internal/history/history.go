// Package history records what got launched and when. It is
// write-only from the ranking engine's point of view: scores never
// read it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the launch history database with separate read/write pools
type Store struct {
	write *sql.DB
	read  *sql.DB
	path  string
}

// Launch is one recorded launch event.
type Launch struct {
	ID         int64
	Name       string
	Path       string
	LaunchedAt time.Time
}

// Open opens (creating if needed) the history database at dbPath.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)

	// Write pool: MUST be 1 connection only
	write, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open write connection: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxIdleTime(time.Minute)

	read, err := sql.Open("sqlite", connStr)
	if err != nil {
		write.Close()
		return nil, fmt.Errorf("open read connection: %w", err)
	}
	read.SetMaxOpenConns(4)
	read.SetMaxIdleConns(2)
	read.SetConnMaxIdleTime(time.Minute)

	s := &Store{
		write: write,
		read:  read,
		path:  dbPath,
	}

	if err := s.initSchema(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes both database connections
func (s *Store) Close() error {
	writeErr := s.write.Close()
	readErr := s.read.Close()
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// initSchema creates the schema if it doesn't exist
func (s *Store) initSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS launches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    launched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_launches_path ON launches(path);
CREATE INDEX IF NOT EXISTS idx_launches_time ON launches(launched_at);
	`

	if _, err := s.write.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record stores one launch event.
func (s *Store) Record(ctx context.Context, name, path string) error {
	query := `INSERT INTO launches (name, path) VALUES (?, ?)`
	if _, err := s.write.ExecContext(ctx, query, name, path); err != nil {
		return fmt.Errorf("record launch: %w", err)
	}
	return nil
}

// Recent returns the most recent launches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Launch, error) {
	query := `
SELECT id, name, path, launched_at
FROM launches
ORDER BY launched_at DESC, id DESC
LIMIT ?
	`

	rows, err := s.read.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent launches: %w", err)
	}
	defer rows.Close()

	var launches []Launch
	for rows.Next() {
		var l Launch
		if err := rows.Scan(&l.ID, &l.Name, &l.Path, &l.LaunchedAt); err != nil {
			return nil, fmt.Errorf("scan launch row: %w", err)
		}
		launches = append(launches, l)
	}
	return launches, rows.Err()
}

// TopEntry is an aggregated launch count for one item.
type TopEntry struct {
	Name  string
	Path  string
	Count int
}

// Top returns the most launched items, most frequent first.
func (s *Store) Top(ctx context.Context, limit int) ([]TopEntry, error) {
	query := `
SELECT name, path, COUNT(*) AS n
FROM launches
GROUP BY path
ORDER BY n DESC, name ASC
LIMIT ?
	`

	rows, err := s.read.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top launches: %w", err)
	}
	defer rows.Close()

	var entries []TopEntry
	for rows.Next() {
		var e TopEntry
		if err := rows.Scan(&e.Name, &e.Path, &e.Count); err != nil {
			return nil, fmt.Errorf("scan top row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
