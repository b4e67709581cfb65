package profile

import "errors"

var (
	// ErrProfileNotFound is returned when the profile does not exist
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	// ErrInsufficientCredits is returned when a debit would take the
	// balance below zero; the conditional update never applies it
	ErrInsufficientCredits = errors.New("profile.repository: insufficient credits")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("profile.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("profile.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("profile.repository: failed to scan row")
)
