package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestInitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := Init(ctx, db); err != nil {
		t.Fatalf("first init: %v", err)
	}
	// A second run must neither fail nor duplicate the seeds
	if err := Init(ctx, db); err != nil {
		t.Fatalf("second init: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM access_points`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected exactly 3 seed rows, got %d", count)
	}
}

func TestInitPreservesExistingRows(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := Init(ctx, db); err != nil {
		t.Fatalf("init: %v", err)
	}

	// Simulate a deployment that renamed a seed and booked some slots
	if _, err := db.ExecContext(ctx, `UPDATE access_points SET name = 'Renamed', current_users = 4 WHERE id = 1`); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := Init(ctx, db); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	var name string
	var current int
	if err := db.QueryRowContext(ctx, `SELECT name, current_users FROM access_points WHERE id = 1`).Scan(&name, &current); err != nil {
		t.Fatalf("query: %v", err)
	}
	if name != "Renamed" || current != 4 {
		t.Fatalf("re-init clobbered existing row: %s/%d", name, current)
	}
}
