package credits

import "errors"

var (
	// ErrProfileNotFound is returned when the member profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNegativeBalance is returned when an adjustment would set a
	// balance below zero.
	ErrNegativeBalance = errors.New("credit balance cannot be negative")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("service: internal error")
)
