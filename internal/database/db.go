package database

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the SQLite database file at path
// and verifies the connection.
func Open(path string) (*sql.DB, error) {
	// _pragma busy_timeout keeps a briefly-blocked statement waiting
	// instead of failing with SQLITE_BUSY
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; pinning the pool to one
	// connection serializes every statement, which is also what makes
	// the booking check-then-increment transaction safe against
	// concurrent requests for the same access point.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
