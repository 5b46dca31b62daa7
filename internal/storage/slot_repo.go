package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Slot keys.
const (
	KeyTodos    = "todos"
	KeyDarkMode = "darkMode"
	KeyXP       = "xp"
)

type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Get returns the value stored under key. ok is false when the key has
// never been written.
func (r *SlotRepo) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM slot WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("slot get %q: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the value under key. Each write is independent and
// last-write-wins; there is no batching across keys.
func (r *SlotRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slot (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("slot set %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (r *SlotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slot WHERE key = ?`, key); err != nil {
		return fmt.Errorf("slot delete %q: %w", key, err)
	}
	return nil
}
