package cancel_booking

import (
	"time"
)

// Request identifies the booking and the acting user. Staff cancel any
// booking and skip the policy window; members only their own, inside it.
type Request struct {
	BookingID string
	ActorID   string
	IsStaff   bool
}

// Response is the cancelled booking. The spent credit is always
// refunded, whoever cancelled.
type Response struct {
	ID          string
	UserID      string
	TimeSlotID  string
	BookingDate time.Time
	Status      string
	UpdatedAt   time.Time
}
