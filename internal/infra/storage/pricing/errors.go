package pricing

import "errors"

var (
	ErrPackageNotFound = errors.New("pricing.repository: pricing package not found")
	ErrBuildQuery      = errors.New("pricing.repository: failed to build query")
	ErrExecQuery       = errors.New("pricing.repository: failed to execute query")
	ErrScanRow         = errors.New("pricing.repository: failed to scan row")
)
