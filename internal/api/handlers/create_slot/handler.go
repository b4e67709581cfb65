package create_slot

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	slotsService "github.com/studiofit/booking-service/internal/service/slots"
	"github.com/studiofit/booking-service/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlot        = "invalid slot definition"
)

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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserIDFromContext(r.Context())
	req.CreatedBy = &actorID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, slotsService.ErrInvalidInput) {
			h.logger.Warn("POST /slots - Invalid slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
			return
		}
		h.logger.Error("POST /slots - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
