package database

import (
	"context"
	"database/sql"
)

// Init creates the schema if it does not exist and inserts the seed
// access points.  Every statement is idempotent, so Init is safe to
// run on each startup: tables are created with IF NOT EXISTS and the
// seed rows are inserted OR IGNORE keyed by id, meaning a database
// that already has rows 1..3 (or user-created replacements) is left
// untouched.
func Init(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS access_points (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    name TEXT NOT NULL,
		    latitude REAL NOT NULL,
		    longitude REAL NOT NULL,
		    description TEXT,
		    contact TEXT,
		    available_hours TEXT,
		    max_users INTEGER DEFAULT 5,
		    current_users INTEGER DEFAULT 0,
		    internet_speed TEXT,
		    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		    active INTEGER DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    access_point_id INTEGER,
		    user_name TEXT NOT NULL,
		    user_contact TEXT,
		    start_time DATETIME NOT NULL,
		    end_time DATETIME NOT NULL,
		    purpose TEXT,
		    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		    FOREIGN KEY (access_point_id) REFERENCES access_points (id)
		)`,
		`INSERT OR IGNORE INTO access_points
		    (id, name, latitude, longitude, description, contact, available_hours, internet_speed)
		 VALUES
		    (1, 'Community Library WiFi', 40.7128, -74.0060, 'Free WiFi available during library hours', 'library@community.org', '9 AM - 8 PM', '50 Mbps'),
		    (2, 'Coffee Shop Hotspot', 40.7589, -73.9851, 'Purchase required for WiFi access', 'coffee@shop.com', '6 AM - 10 PM', '25 Mbps'),
		    (3, 'Community Center', 40.7411, -73.9897, 'Free access for community members', 'center@community.org', '8 AM - 6 PM', '100 Mbps')`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
