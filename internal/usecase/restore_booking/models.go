package restore_booking

import (
	"time"
)

// Request identifies the cancelled booking to bring back.
type Request struct {
	BookingID string
}

type Response struct {
	ID          string
	UserID      string
	TimeSlotID  string
	BookingDate time.Time
	Status      string
	UpdatedAt   time.Time
}
