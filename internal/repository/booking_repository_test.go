package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

// insertBooking creates a booking in its own transaction, bypassing
// the capacity check, so list filters can be tested in isolation.
func insertBooking(t *testing.T, db *sql.DB, repo *BookingRepo, p BookingParams) int64 {
	t.Helper()
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	created, err := repo.CreateTx(ctx, tx, p)
	if err != nil {
		_ = tx.Rollback()
		t.Fatalf("create booking: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return created.ID
}

func stamp(t time.Time) string { return t.UTC().Format(TimeLayout) }

func TestCreateTxReturnsFullRecord(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	created, err := repo.CreateTx(ctx, tx, BookingParams{
		AccessPointID: 1,
		UserName:      "Dana",
		UserContact:   strPtr("dana@example.org"),
		StartTime:     stamp(now.Add(time.Hour)),
		EndTime:       stamp(now.Add(2 * time.Hour)),
		Purpose:       strPtr("Study group"),
	})
	if err != nil {
		_ = tx.Rollback()
		t.Fatalf("create booking: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.UserName != "Dana" {
		t.Fatalf("user_name not round-tripped: %q", created.UserName)
	}
	if created.CreatedAt == "" {
		t.Fatalf("expected created_at to be set")
	}
	if created.Purpose == nil || *created.Purpose != "Study group" {
		t.Fatalf("purpose not round-tripped: %v", created.Purpose)
	}
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	// One expired, two active in reverse start order
	insertBooking(t, db, repo, BookingParams{
		AccessPointID: 1, UserName: "Expired",
		StartTime: stamp(now.Add(-3 * time.Hour)), EndTime: stamp(now.Add(-time.Hour)),
	})
	insertBooking(t, db, repo, BookingParams{
		AccessPointID: 2, UserName: "Later",
		StartTime: stamp(now.Add(3 * time.Hour)), EndTime: stamp(now.Add(4 * time.Hour)),
	})
	insertBooking(t, db, repo, BookingParams{
		AccessPointID: 1, UserName: "Sooner",
		StartTime: stamp(now.Add(time.Hour)), EndTime: stamp(now.Add(2 * time.Hour)),
	})

	active, err := repo.ListActive(context.Background(), now)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active bookings, got %d", len(active))
	}
	for _, b := range active {
		if b.EndTime <= stamp(now) {
			t.Fatalf("booking %d has end_time %q <= now", b.ID, b.EndTime)
		}
	}
	if active[0].UserName != "Sooner" || active[1].UserName != "Later" {
		t.Fatalf("bookings not ordered by start_time: %q, %q", active[0].UserName, active[1].UserName)
	}
	if active[0].AccessPointName != "Community Library WiFi" {
		t.Fatalf("expected joined access point name, got %q", active[0].AccessPointName)
	}
}

func TestListActiveBoundary(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepo(db)
	now := time.Now().UTC().Truncate(time.Second)

	// end_time == now is not active: the filter is strictly greater-than
	insertBooking(t, db, repo, BookingParams{
		AccessPointID: 1, UserName: "Boundary",
		StartTime: stamp(now.Add(-time.Hour)), EndTime: stamp(now),
	})
	active, err := repo.ListActive(context.Background(), now)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("booking ending exactly now must not be active, got %d rows", len(active))
	}
}
