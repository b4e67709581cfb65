package domain

import "time"

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents one user's reservation of one seat in one slot
// occurrence on one calendar date.
type Booking struct {
	ID          string
	UserID      string
	TimeSlotID  string
	BookingDate time.Time // calendar date of the occurrence, required for recurring slots too
	Status      BookingStatus
	CreatedBy   *string // set when staff booked on the client's behalf
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal returns true once the booking left the confirmed state.
func (b *Booking) IsTerminal() bool {
	return b.Status != StatusConfirmed
}

// CanBeCancelled returns true if the booking may transition to cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking may transition to completed.
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeRestored returns true if staff may move the booking back to
// confirmed. Restore is the only backward edge in the state machine.
func (b *Booking) CanBeRestored() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter narrows staff booking listings.
type BookingsFilter struct {
	TimeSlotID      *string
	Date            *time.Time
	UserID          *string
	Status          *BookingStatus
	IncludeInactive bool // include cancelled bookings when no explicit status is set
}
