package model

// Booking records a reservation of one capacity slot at an access
// point for a bounded time window.  Bookings are never mutated or
// deleted once created; a booking is "active" while its end time has
// not yet passed, which is evaluated at query time rather than kept
// as a stored flag.  Corresponds to a row in the `bookings` table.
//
// StartTime and EndTime are stored as normalized UTC timestamps in
// `YYYY-MM-DD HH:MM:SS` form so that string comparison is a sound
// chronological ordering.
type Booking struct {
	ID            int64   `json:"id"`             // bookings.id
	AccessPointID int64   `json:"access_point_id"` // bookings.access_point_id
	UserName      string  `json:"user_name"`      // bookings.user_name
	UserContact   *string `json:"user_contact"`   // bookings.user_contact (nullable)
	StartTime     string  `json:"start_time"`     // bookings.start_time
	EndTime       string  `json:"end_time"`       // bookings.end_time
	Purpose       *string `json:"purpose"`        // bookings.purpose (nullable)
	CreatedAt     string  `json:"created_at"`     // bookings.created_at
}

// ActiveBooking is a Booking joined with the name of its access point,
// as returned by the bookings listing endpoint.
type ActiveBooking struct {
	Booking
	AccessPointName string `json:"access_point_name"` // access_points.name
}
