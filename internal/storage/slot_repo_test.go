package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *SlotRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSlotRepo(db)
}

func TestSlotMissingKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, KeyTodos)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key")
	}
}

func TestSlotSetGetOverwrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, KeyXP, "30"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := repo.Get(ctx, KeyXP)
	if err != nil || !ok || v != "30" {
		t.Fatalf("get after set: %q %v %v", v, ok, err)
	}

	// last write wins
	if err := repo.Set(ctx, KeyXP, "40"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = repo.Get(ctx, KeyXP)
	if v != "40" {
		t.Fatalf("overwrite: got %q, want 40", v)
	}
}

func TestSlotDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, KeyDarkMode, "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Delete(ctx, KeyDarkMode); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, KeyDarkMode); ok {
		t.Fatalf("key should be gone")
	}
	if err := repo.Delete(ctx, "never-written"); err != nil {
		t.Fatalf("deleting a missing key should not error: %v", err)
	}
}
