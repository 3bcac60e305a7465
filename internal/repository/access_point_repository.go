package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/communityconnect/community-wifi/internal/model"
)

// TimeLayout is the normalized form in which all timestamps are stored.
// SQLite has no native DATETIME type; storing every timestamp in this
// one UTC layout makes lexicographic comparison a valid chronological
// ordering, which the active-bookings filter relies on.
const TimeLayout = "2006-01-02 15:04:05"

// AccessPointRepo provides CRUD operations for access points.  Note
// that the current_users counter is append-only: IncrementUsersTx is
// the only mutation and nothing ever decrements it, so occupancy is
// monotonically non-decreasing for the lifetime of a point.
type AccessPointRepo struct {
	db *sql.DB
}

// NewAccessPointRepo returns a new AccessPointRepo bound to the given database.
func NewAccessPointRepo(db *sql.DB) *AccessPointRepo { return &AccessPointRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// that span multiple repositories.
func (r *AccessPointRepo) DB() *sql.DB { return r.db }

// AccessPointParams carries the caller-supplied fields for a new
// access point.  Optional free-text fields are pointers; nil is stored
// as NULL.  A MaxUsers of zero means "not supplied" and falls back to
// the default capacity of 5.
type AccessPointParams struct {
	Name           string
	Latitude       float64
	Longitude      float64
	Description    *string
	Contact        *string
	AvailableHours *string
	MaxUsers       int
	InternetSpeed  *string
}

const accessPointColumns = `id, name, latitude, longitude, description, contact,
       available_hours, max_users, current_users, internet_speed, created_at, active`

// Create inserts a new access point and returns the full created row,
// including the assigned id and the defaults filled in by the schema
// (current_users = 0, active = 1, created_at = now).  Presence
// validation of name and coordinates is the caller's responsibility.
func (r *AccessPointRepo) Create(ctx context.Context, p AccessPointParams) (*model.AccessPoint, error) {
	maxUsers := p.MaxUsers
	if maxUsers <= 0 {
		maxUsers = 5
	}
	const q = `INSERT INTO access_points
	           (name, latitude, longitude, description, contact, available_hours, max_users, internet_speed)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		p.Name, p.Latitude, p.Longitude, p.Description, p.Contact,
		p.AvailableHours, maxUsers, p.InternetSpeed,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	// Query back the full row to populate timestamps and defaults
	return r.GetByID(ctx, id)
}

// GetByID returns a single access point by id, active or not.  When no
// row matches, ErrAccessPointNotFound is returned.
func (r *AccessPointRepo) GetByID(ctx context.Context, id int64) (*model.AccessPoint, error) {
	q := `SELECT ` + accessPointColumns + ` FROM access_points WHERE id = ?`
	ap, err := scanAccessPoint(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccessPointNotFound
	}
	return ap, err
}

// ListActive returns all access points with the active flag set.  No
// ordering is applied; callers display points on a map rather than in
// a ranked list.  When no points exist, an empty slice is returned.
func (r *AccessPointRepo) ListActive(ctx context.Context) ([]model.AccessPoint, error) {
	q := `SELECT ` + accessPointColumns + ` FROM access_points WHERE active = 1`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	points := make([]model.AccessPoint, 0)
	for rows.Next() {
		ap, err := scanAccessPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, *ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// CapacityTx reads an access point's occupancy counters inside an
// existing transaction.  It returns ErrAccessPointNotFound when the id
// does not reference a row.  Callers use it together with
// IncrementUsersTx so that the check and the increment commit as one
// atomic unit.
func (r *AccessPointRepo) CapacityTx(ctx context.Context, tx *sql.Tx, id int64) (current, max int, err error) {
	const q = `SELECT current_users, max_users FROM access_points WHERE id = ?`
	err = tx.QueryRowContext(ctx, q, id).Scan(&current, &max)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, ErrAccessPointNotFound
	}
	return current, max, err
}

// IncrementUsersTx bumps current_users by exactly 1 within the scope
// of an existing transaction.  The caller must commit or rollback.
func (r *AccessPointRepo) IncrementUsersTx(ctx context.Context, tx *sql.Tx, id int64) error {
	const q = `UPDATE access_points SET current_users = current_users + 1 WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}

// ReserveSlotTx claims one capacity slot on the access point inside an
// existing transaction.  It returns ErrAccessPointNotFound when the id
// references no row and ErrAtCapacity when current_users has reached
// max_users; in both cases nothing is written.  Because the check and
// the increment run in the caller's transaction, two concurrent
// reservations of the last slot cannot both commit.
func (r *AccessPointRepo) ReserveSlotTx(ctx context.Context, tx *sql.Tx, id int64) error {
	current, max, err := r.CapacityTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if current >= max {
		return ErrAtCapacity
	}
	return r.IncrementUsersTx(ctx, tx, id)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccessPoint(row rowScanner) (*model.AccessPoint, error) {
	var ap model.AccessPoint
	var description, contact, availableHours, internetSpeed sql.NullString
	var active int
	err := row.Scan(
		&ap.ID, &ap.Name, &ap.Latitude, &ap.Longitude,
		&description, &contact, &availableHours,
		&ap.MaxUsers, &ap.CurrentUsers, &internetSpeed,
		&ap.CreatedAt, &active,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		v := description.String
		ap.Description = &v
	}
	if contact.Valid {
		v := contact.String
		ap.Contact = &v
	}
	if availableHours.Valid {
		v := availableHours.String
		ap.AvailableHours = &v
	}
	if internetSpeed.Valid {
		v := internetSpeed.String
		ap.InternetSpeed = &v
	}
	ap.Active = active != 0
	return &ap, nil
}
