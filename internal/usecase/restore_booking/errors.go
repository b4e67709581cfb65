package restore_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("restore_booking: booking not found")

	// ErrNotCancelled is returned when the booking is not in the
	// cancelled state.
	ErrNotCancelled = errors.New("restore_booking: booking is not cancelled")

	// ErrSlotFull is returned when the seat was taken since cancellation.
	ErrSlotFull = errors.New("restore_booking: slot is full")

	// ErrInsufficientCredits is returned when the refunded credit was
	// already spent elsewhere.
	ErrInsufficientCredits = errors.New("restore_booking: insufficient credits")

	// ErrInvalidInput is returned for malformed input.
	ErrInvalidInput = errors.New("restore_booking: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("restore_booking: internal error")
)
