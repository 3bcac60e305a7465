// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// BookingCreatedEvent is published when a booking is successfully
// created and the capacity slot committed.  It carries enough
// information for downstream consumers to log or notify without
// querying the primary database.
type BookingCreatedEvent struct {
	BookingID       int64  `json:"booking_id"`
	AccessPointID   int64  `json:"access_point_id"`
	AccessPointName string `json:"access_point_name"`
	UserName        string `json:"user_name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	CreatedAt       string `json:"created_at"`
}
