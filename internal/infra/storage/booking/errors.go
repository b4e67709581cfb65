package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking is returned when a confirmed booking already
	// exists for the same (user, slot, date) triple; the store enforces
	// this with a partial unique index
	ErrDuplicateBooking = errors.New("booking.repository: confirmed booking already exists")

	// ErrStatusConflict is returned when a status transition found the
	// booking in a different state than the caller expected
	ErrStatusConflict = errors.New("booking.repository: booking not in expected status")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
