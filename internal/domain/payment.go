package domain

import "time"

// PaymentRequestStatus is the lifecycle of a credit purchase request.
type PaymentRequestStatus string

const (
	PaymentStatusPending  PaymentRequestStatus = "pending"
	PaymentStatusApproved PaymentRequestStatus = "approved"
	PaymentStatusRejected PaymentRequestStatus = "rejected"
)

// PaymentRequest is a client's ask for prepaid credits. Settlement
// happens outside the system; staff approve or reject the request, and
// approval grants the credits.
type PaymentRequest struct {
	ID               string
	UserID           string
	CreditsRequested int
	PricingPackageID *string
	Status           PaymentRequestStatus
	AdminNotes       *string
	ProcessedBy      *string
	ProcessedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsProcessed returns true once the request left the pending state.
func (r *PaymentRequest) IsProcessed() bool {
	return r.Status != PaymentStatusPending
}

// PricingPackage is a displayed credit bundle clients can request.
type PricingPackage struct {
	ID           string
	Name         string
	Credits      int
	Price        float64
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
