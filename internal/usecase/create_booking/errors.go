package create_booking

import "errors"

var (
	// ErrSlotNotFound is returned when the slot does not exist.
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrSlotInactive is returned when the slot has been deactivated.
	ErrSlotInactive = errors.New("create_booking: time slot is inactive")

	// ErrSlotDateMismatch is returned when the slot does not occur on the
	// requested date.
	ErrSlotDateMismatch = errors.New("create_booking: slot does not occur on requested date")

	// ErrDuplicateBooking is returned when the member already holds a
	// confirmed booking for this slot occurrence.
	ErrDuplicateBooking = errors.New("create_booking: duplicate booking")

	// ErrSlotFull is returned when no seats remain.
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrInsufficientCredits is returned when the member balance is empty.
	ErrInsufficientCredits = errors.New("create_booking: insufficient credits")

	// ErrProfileNotFound is returned when the member profile does not exist.
	ErrProfileNotFound = errors.New("create_booking: profile not found")

	// ErrInvalidDate is returned for past or malformed booking dates.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput is returned for malformed input.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
