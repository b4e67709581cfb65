package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/types"
)

var (
	ErrInvalidKind      = errors.New("invalid slot kind")
	ErrInvalidSchedule  = errors.New("invalid slot schedule")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidCapacity  = errors.New("invalid capacity")
)

// CreateSlotRequest defines a new class slot. Exactly one of DayOfWeek
// (for recurring slots) or SpecificDate must match the kind.
type CreateSlotRequest struct {
	Kind         string  `json:"kind"`
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"` // "2006-01-02"
	StartTime    string  `json:"startTime"`              // "HH:MM"
	EndTime      string  `json:"endTime"`                // "HH:MM"
	Capacity     int     `json:"capacity"`
	CreatedBy    *string `json:"-"`
}

// UpdateSlotRequest changes mutable slot fields. Nil fields are left as is.
type UpdateSlotRequest struct {
	Capacity *int  `json:"capacity,omitempty"`
	Active   *bool `json:"active,omitempty"`
}

type SlotResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	DayOfWeek    *int      `json:"dayOfWeek,omitempty"`
	SpecificDate *string   `json:"specificDate,omitempty"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Capacity     int       `json:"capacity"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ToDomainSlot validates and converts the request into a domain slot.
func (r *CreateSlotRequest) ToDomainSlot() (*domain.TimeSlot, error) {
	kind := domain.SlotKind(r.Kind)
	if kind != domain.SlotRecurring && kind != domain.SlotSpecificDate {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, r.Kind)
	}

	slot := domain.TimeSlot{
		Kind:      kind,
		Capacity:  r.Capacity,
		Active:    true,
		CreatedBy: r.CreatedBy,
	}

	switch kind {
	case domain.SlotRecurring:
		if r.DayOfWeek == nil || r.SpecificDate != nil {
			return nil, fmt.Errorf("%w: recurring slots take dayOfWeek only", ErrInvalidSchedule)
		}
		if *r.DayOfWeek < domain.MinDayOfWeek || *r.DayOfWeek > domain.MaxDayOfWeek {
			return nil, fmt.Errorf("%w: dayOfWeek out of range", ErrInvalidSchedule)
		}
		slot.DayOfWeek = *r.DayOfWeek
	case domain.SlotSpecificDate:
		if r.SpecificDate == nil || r.DayOfWeek != nil {
			return nil, fmt.Errorf("%w: specific_date slots take specificDate only", ErrInvalidSchedule)
		}
		date, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad specificDate: %v", ErrInvalidSchedule, err)
		}
		slot.SpecificDate = &date
		slot.DayOfWeek = int(date.Weekday())
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad startTime: %v", ErrInvalidTimeRange, err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad endTime: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must precede endTime", ErrInvalidTimeRange)
	}
	slot.StartTime = start
	slot.EndTime = end

	if r.Capacity < domain.MinCapacity || r.Capacity > domain.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidCapacity, domain.MinCapacity, domain.MaxCapacity)
	}

	return &slot, nil
}

// Validate checks an update request has something to change and sane values.
func (r *UpdateSlotRequest) Validate() error {
	if r.Capacity == nil && r.Active == nil {
		return errors.New("empty update")
	}
	if r.Capacity != nil && (*r.Capacity < domain.MinCapacity || *r.Capacity > domain.MaxCapacity) {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidCapacity, domain.MinCapacity, domain.MaxCapacity)
	}
	return nil
}

func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	resp := &SlotResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Capacity:  s.Capacity,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.Kind == domain.SlotRecurring {
		day := s.DayOfWeek
		resp.DayOfWeek = &day
	}
	if s.SpecificDate != nil {
		dateStr := s.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &dateStr
	}

	return resp
}

func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}
	return resp
}
