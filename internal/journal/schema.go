package journal

import (
	"database/sql"
	"fmt"

	"github.com/kherge/go.carli/internal/logger"
)

// schemaVersion is recorded through PRAGMA user_version so a future layout
// change can migrate existing databases.
const schemaVersion = 1

const (
	createTablesSQL = `
    CREATE TABLE IF NOT EXISTS entries (
        id         INTEGER PRIMARY KEY AUTOINCREMENT,
        created_at INTEGER NOT NULL CHECK (typeof(created_at) = 'integer'),
        text       TEXT NOT NULL
    );`

	insertEntrySQL = `
    INSERT INTO entries (created_at, text) VALUES (?, ?)`

	selectEntriesSQL = `
    SELECT id, created_at, text
    FROM entries
    ORDER BY id
    LIMIT ?`
)

// ensureSchema creates the schema when missing and rejects databases
// written by a newer version of the application.
func ensureSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read the schema version: %w", err)
	}

	if version > schemaVersion {
		return fmt.Errorf("the database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin the schema transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return fmt.Errorf("failed to create the schema: %w", err)
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to record the schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit the schema transaction: %w", err)
	}

	committed = true

	logger.Debug().Int("version", schemaVersion).Msg("Schema initialized")

	return nil
}
