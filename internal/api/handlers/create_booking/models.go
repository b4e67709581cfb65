package create_booking

import (
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	createBooking "github.com/studiofit/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model. UserID is optional and only
// honored for staff booking on a member's behalf.
type CreateBookingRequest struct {
	UserID      *string `json:"userId,omitempty"`
	TimeSlotID  string  `json:"timeSlotId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	TimeSlotID       string `json:"timeSlotId"`
	BookingDate      string `json:"bookingDate"`
	Status           string `json:"status"`
	RemainingCredits int    `json:"remainingCredits"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, resolving the booking
// owner from the authenticated caller.
func (r *CreateBookingRequest) ToUseCaseRequest(actorID string, isStaff bool) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:     actorID,
		TimeSlotID: r.TimeSlotID,
		Date:       bookingDate,
	}

	if isStaff && r.UserID != nil && *r.UserID != actorID {
		req.UserID = *r.UserID
		req.CreatedBy = &actorID
	}

	return req, nil
}

func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		TimeSlotID:       resp.TimeSlotID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		Status:           resp.Status,
		RemainingCredits: resp.RemainingCredits,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
