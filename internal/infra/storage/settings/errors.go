package settings

import "errors"

var (
	// ErrSettingNotFound is returned when the setting key has no row
	ErrSettingNotFound = errors.New("settings.repository: setting not found")

	// ErrInvalidPolicy is returned when the stored policy value does
	// not match the {unit, value} schema
	ErrInvalidPolicy = errors.New("settings.repository: invalid cancellation policy value")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
