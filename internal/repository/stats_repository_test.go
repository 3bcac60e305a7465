package repository

import (
	"context"
	"testing"
	"time"
)

func TestComputeStatsSeedScenario(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Shape the three seed points into max_users {5, 8, 10} with
	// current_users {0, 2, 5}
	if _, err := db.ExecContext(ctx, `UPDATE access_points SET max_users = 8, current_users = 2 WHERE id = 2`); err != nil {
		t.Fatalf("update point 2: %v", err)
	}
	if _, err := db.ExecContext(ctx, `UPDATE access_points SET max_users = 10, current_users = 5 WHERE id = 3`); err != nil {
		t.Fatalf("update point 3: %v", err)
	}

	stats, err := NewStatsRepo(db).Compute(ctx, time.Now())
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	if stats.TotalAccessPoints != 3 {
		t.Fatalf("expected 3 access points, got %d", stats.TotalAccessPoints)
	}
	if stats.ActiveBookings != 0 {
		t.Fatalf("expected 0 active bookings, got %d", stats.ActiveBookings)
	}
	if stats.CurrentTotalUsers != 7 {
		t.Fatalf("expected current_total_users 7, got %d", stats.CurrentTotalUsers)
	}
}

func TestComputeStatsMatchesListActive(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	apRepo := NewAccessPointRepo(db)
	bookingRepo := NewBookingRepo(db)
	now := time.Now().UTC()

	if _, err := db.ExecContext(ctx, `UPDATE access_points SET current_users = 4 WHERE id = 1`); err != nil {
		t.Fatalf("seed occupancy: %v", err)
	}
	if _, err := db.ExecContext(ctx, `UPDATE access_points SET active = 0 WHERE id = 3`); err != nil {
		t.Fatalf("deactivate point: %v", err)
	}
	insertBooking(t, db, bookingRepo, BookingParams{
		AccessPointID: 1, UserName: "Alex",
		StartTime: stamp(now.Add(time.Hour)), EndTime: stamp(now.Add(2 * time.Hour)),
	})

	stats, err := NewStatsRepo(db).Compute(ctx, now)
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	points, err := apRepo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active points: %v", err)
	}
	if stats.TotalAccessPoints != len(points) {
		t.Fatalf("total_access_points %d != %d active rows", stats.TotalAccessPoints, len(points))
	}
	sum := 0
	for _, p := range points {
		sum += p.CurrentUsers
	}
	if stats.CurrentTotalUsers != sum {
		t.Fatalf("current_total_users %d != sum over active points %d", stats.CurrentTotalUsers, sum)
	}
	if stats.ActiveBookings != 1 {
		t.Fatalf("expected 1 active booking, got %d", stats.ActiveBookings)
	}
}

func TestComputeStatsEmptyWhenNoActivePoints(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `UPDATE access_points SET active = 0`); err != nil {
		t.Fatalf("deactivate all: %v", err)
	}
	stats, err := NewStatsRepo(db).Compute(ctx, time.Now())
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	if stats.TotalAccessPoints != 0 || stats.CurrentTotalUsers != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}
