package repository

import (
	"context"
	"database/sql"
	"time"
)

// StatsRepo computes the aggregate counters shown on the dashboard.
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo returns a new StatsRepo bound to the given database.
func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// Stats aggregates the three dashboard counters.  CurrentTotalUsers
// always equals the sum of current_users over the rows returned by
// AccessPointRepo.ListActive, since both read the same active rows.
type Stats struct {
	TotalAccessPoints int `json:"total_access_points"`
	ActiveBookings    int `json:"active_bookings"`
	CurrentTotalUsers int `json:"current_total_users"`
}

// Compute returns the counters as of the supplied instant.  The three
// counts are independent of one another, so they are gathered in a
// single statement with scalar subselects rather than three
// sequential round trips.
func (r *StatsRepo) Compute(ctx context.Context, now time.Time) (*Stats, error) {
	const q = `SELECT
	    (SELECT COUNT(*) FROM access_points WHERE active = 1),
	    (SELECT COUNT(*) FROM bookings WHERE end_time > ?),
	    (SELECT COALESCE(SUM(current_users), 0) FROM access_points WHERE active = 1)`
	var s Stats
	err := r.db.QueryRowContext(ctx, q, now.UTC().Format(TimeLayout)).Scan(
		&s.TotalAccessPoints, &s.ActiveBookings, &s.CurrentTotalUsers,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
