package paymentrequest

import "errors"

var (
	ErrRequestNotFound  = errors.New("paymentrequest.repository: payment request not found")
	ErrAlreadyProcessed = errors.New("paymentrequest.repository: payment request already processed")
	ErrBuildQuery       = errors.New("paymentrequest.repository: failed to build query")
	ErrExecQuery        = errors.New("paymentrequest.repository: failed to execute query")
	ErrScanRow          = errors.New("paymentrequest.repository: failed to scan row")
)
