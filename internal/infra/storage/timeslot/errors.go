package timeslot

import "errors"

var (
	// ErrSlotNotFound is returned when the time slot does not exist
	ErrSlotNotFound = errors.New("timeslot.repository: slot not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
