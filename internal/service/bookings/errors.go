package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyTerminal is returned when the booking already left the
	// confirmed state and cannot transition again.
	ErrAlreadyTerminal = errors.New("booking is already in a terminal state")

	// ErrInvalidInput is returned for malformed filters or statuses.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("service: internal error")
)
