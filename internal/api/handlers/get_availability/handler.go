package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	availabilityService "github.com/studiofit/booking-service/internal/service/availability"
)

const (
	msgSlotNotFound = "time slot not found"
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgMissingDate  = "date query parameter is required"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/{id}/availability - Missing date: slot_id=%s", slotID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.GetForDate(r.Context(), slotID, dateStr)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id}/availability - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /slots/{id}/availability - Invalid date: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots/{id}/availability - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
