package create_booking

import (
	"fmt"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.TimeSlotID == "" {
		return fmt.Errorf("%w: timeSlotID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateSlotForDate checks the slot is bookable for the requested date.
// Deactivation blocks new bookings only; kind and date must agree.
func validateSlotForDate(slot *domain.TimeSlot, date time.Time) error {
	if !slot.Active {
		return ErrSlotInactive
	}

	if !slot.OccursOn(date) {
		return ErrSlotDateMismatch
	}

	return nil
}

// validateDate rejects dates before today in the studio's timezone.
func validateDate(date, now time.Time, loc *time.Location) error {
	localNow := now.In(loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
