package restore_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/domain"
	restoreBooking "github.com/studiofit/booking-service/internal/usecase/restore_booking"
)

const (
	msgBookingNotFound     = "booking not found"
	msgNotCancelled        = "only cancelled bookings can be restored"
	msgSlotFull            = "no seats left for this class"
	msgInsufficientCredits = "member has not enough credits"
)

type Handler struct {
	useCase RestoreBookingUseCase
	logger  Logger
}

func NewHandler(useCase RestoreBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

type restoreResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	TimeSlotID  string `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updatedAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &restoreBooking.Request{
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, restoreBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/restore - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, restoreBooking.ErrNotCancelled):
			h.logger.Warn("PATCH /bookings/{id}/restore - Not cancelled: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotCancelled)

		case errors.Is(err, restoreBooking.ErrSlotFull):
			h.logger.Warn("PATCH /bookings/{id}/restore - Slot full: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, restoreBooking.ErrInsufficientCredits):
			h.logger.Warn("PATCH /bookings/{id}/restore - Insufficient credits: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientCredits)

		case errors.Is(err, restoreBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/restore - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "invalid request")

		default:
			h.logger.Error("PATCH /bookings/{id}/restore - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/restore - Booking restored: booking_id=%s, user_id=%s", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusOK, &restoreResponse{
		ID:          result.ID,
		UserID:      result.UserID,
		TimeSlotID:  result.TimeSlotID,
		BookingDate: result.BookingDate.Format(domain.DateFormat),
		Status:      result.Status,
		UpdatedAt:   result.UpdatedAt.Format(time.RFC3339),
	})
}
