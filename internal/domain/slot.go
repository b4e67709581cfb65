package domain

import (
	"time"

	"github.com/studiofit/booking-service/pkg/types"
)

// SlotKind distinguishes weekly-recurring slots from one-off dates.
type SlotKind string

const (
	SlotRecurring    SlotKind = "recurring"
	SlotSpecificDate SlotKind = "specific_date"
)

// TimeSlot represents a bookable class window with a fixed seat capacity.
// Recurring slots occur every week on DayOfWeek; specific-date slots
// occur once on SpecificDate. Start and end times are studio-local
// wall-clock values.
type TimeSlot struct {
	ID           string
	Kind         SlotKind
	DayOfWeek    int        // 0 (Sunday) .. 6 (Saturday), recurring slots only
	SpecificDate *time.Time // specific-date slots only
	StartTime    types.TimeString
	EndTime      types.TimeString
	Capacity     int
	Active       bool
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OccursOn reports whether the slot has an occurrence on the given
// calendar date.
func (s *TimeSlot) OccursOn(date time.Time) bool {
	switch s.Kind {
	case SlotRecurring:
		return int(date.Weekday()) == s.DayOfWeek
	case SlotSpecificDate:
		return s.SpecificDate != nil && sameDate(*s.SpecificDate, date)
	default:
		return false
	}
}

// StartInstant combines a concrete occurrence date with the slot's
// start time in loc.
func (s *TimeSlot) StartInstant(date time.Time, loc *time.Location) (time.Time, error) {
	return s.StartTime.AtDate(date, loc)
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
