package domain

import "time"

// Availability is the derived seat count for a (slot, date) pair.
// It is recomputed from bookings and capacity, never stored durably;
// cached copies are advisory and must not gate a commit.
type Availability struct {
	TimeSlotID string
	Date       time.Time
	Capacity   int
	Booked     int
	Available  int
}

// IsFull returns true if no seats remain.
func (a *Availability) IsFull() bool {
	return a.Available <= 0
}

// NewAvailability computes availability, clamping at zero so a racing
// overshoot never surfaces as a negative seat count.
func NewAvailability(slotID string, date time.Time, capacity, booked int) *Availability {
	available := capacity - booked
	if available < 0 {
		available = 0
	}
	return &Availability{
		TimeSlotID: slotID,
		Date:       date,
		Capacity:   capacity,
		Booked:     booked,
		Available:  available,
	}
}
