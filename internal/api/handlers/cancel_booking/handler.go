package cancel_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	"github.com/studiofit/booking-service/internal/domain"
	cancelBooking "github.com/studiofit/booking-service/internal/usecase/cancel_booking"
)

const (
	msgBookingNotFound = "booking not found"
	msgAlreadyTerminal = "booking is already cancelled or completed"
	msgAccessDenied    = "you can only cancel your own bookings"
	msgWindowExpired   = "the cancellation window for this class has closed"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

type cancelResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	TimeSlotID  string `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updatedAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		BookingID: bookingID,
		ActorID:   middleware.UserIDFromContext(r.Context()),
		IsStaff:   middleware.RoleFromContext(r.Context()).IsStaff(),
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrAlreadyTerminal):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already terminal: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyTerminal)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelBooking.ErrWindowExpired):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Window expired: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowExpired)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "invalid request")

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusOK, &cancelResponse{
		ID:          result.ID,
		UserID:      result.UserID,
		TimeSlotID:  result.TimeSlotID,
		BookingDate: result.BookingDate.Format(domain.DateFormat),
		Status:      result.Status,
		UpdatedAt:   result.UpdatedAt.Format(time.RFC3339),
	})
}
