package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the persistence slot. The whole app state lives in one
// key-value table: "todos" (serialized task records), "darkMode" ("1"/"0")
// and "xp" (decimal string). Values are always strings.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slot (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
