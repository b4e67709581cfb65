package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyTerminal is returned when the booking is already
	// cancelled or completed.
	ErrAlreadyTerminal = errors.New("cancel_booking: booking is already in a terminal state")

	// ErrAccessDenied is returned when a member targets someone else's
	// booking.
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrWindowExpired is returned when the cancellation window has
	// closed for a member-initiated cancellation.
	ErrWindowExpired = errors.New("cancel_booking: cancellation window expired")

	// ErrInvalidInput is returned for malformed input.
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("cancel_booking: internal error")
)
