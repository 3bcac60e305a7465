package model

// AccessPoint represents a physical location offering shared network
// access to community members.  Each point carries a user-capacity
// limit and a live occupancy counter.  This struct corresponds to a
// row in the `access_points` table and is serialized directly in API
// responses, so the json tags mirror the column names.
//
// CurrentUsers counts capacity slots consumed by bookings.  It only
// ever increases: there is no decrement path when a booking's time
// window lapses, so a slot once taken stays taken.
type AccessPoint struct {
	ID             int64   `json:"id"`              // access_points.id
	Name           string  `json:"name"`            // access_points.name
	Latitude       float64 `json:"latitude"`        // access_points.latitude
	Longitude      float64 `json:"longitude"`       // access_points.longitude
	Description    *string `json:"description"`     // access_points.description (nullable)
	Contact        *string `json:"contact"`         // access_points.contact (nullable)
	AvailableHours *string `json:"available_hours"` // access_points.available_hours (nullable)
	MaxUsers       int     `json:"max_users"`       // access_points.max_users (default 5)
	CurrentUsers   int     `json:"current_users"`   // access_points.current_users (default 0)
	InternetSpeed  *string `json:"internet_speed"`  // access_points.internet_speed (nullable)
	CreatedAt      string  `json:"created_at"`      // access_points.created_at
	Active         bool    `json:"active"`          // access_points.active (default true)
}
