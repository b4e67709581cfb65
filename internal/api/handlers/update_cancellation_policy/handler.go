package update_cancellation_policy

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	settingsService "github.com/studiofit/booking-service/internal/service/settings"
	"github.com/studiofit/booking-service/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPolicy      = "invalid cancellation policy"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/cancellation-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/cancellation-policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserIDFromContext(r.Context())

	result, err := h.service.UpdateCancellationPolicy(r.Context(), &req, actorID)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidPolicy) {
			h.logger.Warn("PUT /settings/cancellation-policy - Invalid policy: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)
			return
		}
		h.logger.Error("PUT /settings/cancellation-policy - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings/cancellation-policy - Policy updated to %d %s by user=%s",
		result.Value, result.Unit, actorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
