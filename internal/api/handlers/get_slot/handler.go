package get_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	slotsService "github.com/studiofit/booking-service/internal/service/slots"
)

const msgSlotNotFound = "time slot not found"

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/{id} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/{id} - Failed: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
