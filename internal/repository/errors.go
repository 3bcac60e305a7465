// Package repository defines error values that are reused across
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrAccessPointNotFound indicates that an operation
// referenced an access point id with no matching row, while
// ErrAtCapacity signals that an access point has no free capacity
// slots left.
package repository

import "errors"

// ErrAccessPointNotFound is returned when an operation references an
// access point that does not exist. Handlers should translate this
// into an HTTP 404 response.
var ErrAccessPointNotFound = errors.New("access point not found")

// ErrAtCapacity is returned when creating a booking would push an
// access point's current_users past its max_users. Handlers should
// translate this into an HTTP 400 response; no booking row is
// created and no counter changes when this error is returned.
var ErrAtCapacity = errors.New("access point is at capacity")
