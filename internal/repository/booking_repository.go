package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/communityconnect/community-wifi/internal/model"
)

// BookingRepo provides operations for bookings.  Bookings are
// insert-only: once created they are never updated or deleted, and
// whether a booking is "active" is decided at query time by comparing
// its end_time against the current clock.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingParams carries the caller-supplied fields for a new booking.
// StartTime and EndTime must already be normalized to TimeLayout in
// UTC; the handler layer performs that normalization during input
// validation.
type BookingParams struct {
	AccessPointID int64
	UserName      string
	UserContact   *string
	StartTime     string
	EndTime       string
	Purpose       *string
}

// CreateTx inserts a new booking within the scope of an existing
// transaction and returns the full created row including the assigned
// id and created_at.  The caller must commit or rollback; the capacity
// check and counter increment on the referenced access point belong
// to the same transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, p BookingParams) (*model.Booking, error) {
	const q = `INSERT INTO bookings
	           (access_point_id, user_name, user_contact, start_time, end_time, purpose)
	           VALUES (?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		p.AccessPointID, p.UserName, p.UserContact, p.StartTime, p.EndTime, p.Purpose,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	// Query back the full row to populate created_at
	const sel = `SELECT id, access_point_id, user_name, user_contact, start_time, end_time, purpose, created_at
	             FROM bookings WHERE id = ?`
	var b model.Booking
	var userContact, purpose sql.NullString
	err = tx.QueryRowContext(ctx, sel, id).Scan(
		&b.ID, &b.AccessPointID, &b.UserName, &userContact,
		&b.StartTime, &b.EndTime, &purpose, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userContact.Valid {
		v := userContact.String
		b.UserContact = &v
	}
	if purpose.Valid {
		v := purpose.String
		b.Purpose = &v
	}
	return &b, nil
}

// ListActive returns all bookings whose end_time has not yet passed at
// the supplied instant, joined with the name of their access point
// and ordered by start_time ascending.  The filter is evaluated per
// query; nothing marks a booking inactive in storage.
func (r *BookingRepo) ListActive(ctx context.Context, now time.Time) ([]model.ActiveBooking, error) {
	const q = `SELECT b.id, b.access_point_id, b.user_name, b.user_contact,
	                  b.start_time, b.end_time, b.purpose, b.created_at,
	                  ap.name
	           FROM bookings b
	           JOIN access_points ap ON b.access_point_id = ap.id
	           WHERE b.end_time > ?
	           ORDER BY b.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, now.UTC().Format(TimeLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.ActiveBooking, 0)
	for rows.Next() {
		var b model.ActiveBooking
		var userContact, purpose sql.NullString
		if err := rows.Scan(
			&b.ID, &b.AccessPointID, &b.UserName, &userContact,
			&b.StartTime, &b.EndTime, &purpose, &b.CreatedAt,
			&b.AccessPointName,
		); err != nil {
			return nil, err
		}
		if userContact.Valid {
			v := userContact.String
			b.UserContact = &v
		}
		if purpose.Valid {
			v := purpose.String
			b.Purpose = &v
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
