package create_booking

import (
	"time"
)

// Request carries a member's intent to book one slot occurrence. When
// staff book on behalf of a member, CreatedBy identifies the staff user.
type Request struct {
	UserID     string
	TimeSlotID string
	Date       time.Time
	CreatedBy  *string
}

// Response is the created booking plus the member's remaining balance.
type Response struct {
	ID               string
	UserID           string
	TimeSlotID       string
	BookingDate      time.Time
	Status           string
	RemainingCredits int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
