package settings

import "errors"

var (
	// ErrInvalidPolicy is returned for policies with unknown units or
	// out-of-range values.
	ErrInvalidPolicy = errors.New("invalid cancellation policy")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("service: internal error")
)
