package models

import (
	"github.com/studiofit/booking-service/internal/domain"
)

// AvailabilityResponse reports remaining seats for one slot occurrence.
type AvailabilityResponse struct {
	TimeSlotID string `json:"timeSlotId"`
	Date       string `json:"date"` // "2006-01-02"
	Capacity   int    `json:"capacity"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
}

func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}
	return &AvailabilityResponse{
		TimeSlotID: a.TimeSlotID,
		Date:       a.Date.Format(domain.DateFormat),
		Capacity:   a.Capacity,
		Booked:     a.Booked,
		Available:  a.Available,
	}
}
