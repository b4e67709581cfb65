package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/domain"
	bookingsService "github.com/studiofit/booking-service/internal/service/bookings"
	"github.com/studiofit/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: slot_id, date, user_id, status, include_inactive.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("include_inactive") == "true",
	}

	if slotID := query.Get("slot_id"); slotID != "" {
		req.TimeSlotID = &slotID
	}
	if userID := query.Get("user_id"); userID != "" {
		req.UserID = &userID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date filter: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
