package create_booking

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	createBooking "github.com/studiofit/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid booking date, expected YYYY-MM-DD"
	msgSlotNotFound        = "time slot not found"
	msgSlotInactive        = "time slot is no longer bookable"
	msgSlotDateMismatch    = "slot does not occur on the requested date"
	msgDuplicateBooking    = "you already have a booking for this class"
	msgSlotFull            = "no seats left for this class"
	msgInsufficientCredits = "not enough credits"
	msgProfileNotFound     = "profile not found"
	msgInvalidBookingDate  = "booking date is in the past"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserIDFromContext(r.Context())
	isStaff := middleware.RoleFromContext(r.Context()).IsStaff()

	useCaseReq, err := req.ToUseCaseRequest(actorID, isStaff)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotInactive):
			h.logger.Warn("POST /bookings - Slot inactive: slot_id=%s", req.TimeSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotInactive)

		case errors.Is(err, createBooking.ErrSlotDateMismatch):
			h.logger.Warn("POST /bookings - Slot date mismatch: slot_id=%s, date=%s", req.TimeSlotID, req.BookingDate)
			handlers.RespondBadRequest(w, msgSlotDateMismatch)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: user_id=%s, slot_id=%s", useCaseReq.UserID, req.TimeSlotID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: slot_id=%s, date=%s", req.TimeSlotID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, createBooking.ErrInsufficientCredits):
			h.logger.Warn("POST /bookings - Insufficient credits: user_id=%s", useCaseReq.UserID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientCredits)

		case errors.Is(err, createBooking.ErrProfileNotFound):
			h.logger.Warn("POST /bookings - Profile not found: user_id=%s", useCaseReq.UserID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, slot_id=%s, error=%v",
				useCaseReq.UserID, req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s, slot_id=%s",
		result.ID, result.UserID, result.TimeSlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
