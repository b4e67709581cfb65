package availability

import "errors"

var (
	// ErrSlotNotFound is returned when the requested time slot does not exist.
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrInvalidInput is returned for malformed dates.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("service: internal error")
)
