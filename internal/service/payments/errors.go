package payments

import "errors"

var (
	// ErrRequestNotFound is returned when the payment request does not exist.
	ErrRequestNotFound = errors.New("payment request not found")

	// ErrAlreadyProcessed is returned when the request already left pending.
	ErrAlreadyProcessed = errors.New("payment request already processed")

	// ErrProfileNotFound is returned when the requesting member does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrPackageNotFound is returned for unknown or retired pricing packages.
	ErrPackageNotFound = errors.New("pricing package not found")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("service: internal error")
)
