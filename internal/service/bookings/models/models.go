package models

import (
	"errors"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest is the staff-side roster query. All filters are
// optional; by default cancelled bookings are excluded.
type ListBookingsRequest struct {
	TimeSlotID      *string    `json:"timeSlotId,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	UserID          *string    `json:"userId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		TimeSlotID:      r.TimeSlotID,
		Date:            r.Date,
		UserID:          r.UserID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TimeSlotID  string    `json:"timeSlotId"`
	BookingDate string    `json:"bookingDate"` // "2025-10-15"
	Status      string    `json:"status"`
	CreatedBy   *string   `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		TimeSlotID:  b.TimeSlotID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		Status:      string(b.Status),
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}

// ToDomainBookingStatus converts a string into a validated status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
