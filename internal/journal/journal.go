// Package journal stores timestamped notes in a SQLite database for the
// journal example application.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kherge/go.carli/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDirPerm = 0o755

// Entry is a single journal entry.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Text      string
}

// Store persists journal entries.
type Store struct {
	db *sql.DB
}

// Open opens the journal database at the given path, creating the parent
// directory and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create the database directory: %w", err)
	}

	// WAL keeps concurrent readers from blocking the writer.
	dsn := path + "?_journal=WAL&_auto_vacuum=2"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()

		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Journal database opened")

	return &Store{db: db}, nil
}

// Append records a new entry with the current time.
func (s *Store) Append(text string) error {
	_, err := s.db.Exec(insertEntrySQL, time.Now().Unix(), text)
	if err != nil {
		return fmt.Errorf("failed to insert the entry: %w", err)
	}

	return nil
}

// List returns up to limit entries in insertion order.
func (s *Store) List(limit int) ([]Entry, error) {
	rows, err := s.db.Query(selectEntriesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query the entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var (
			entry   Entry
			created int64
		)

		if err := rows.Scan(&entry.ID, &created, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan an entry: %w", err)
		}

		entry.CreatedAt = time.Unix(created, 0)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the entries: %w", err)
	}

	return entries, nil
}

// Close checkpoints and closes the database.
func (s *Store) Close() error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint the database: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close the database: %w", err)
	}

	return nil
}
