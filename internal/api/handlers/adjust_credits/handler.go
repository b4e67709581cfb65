package adjust_credits

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	creditsService "github.com/studiofit/booking-service/internal/service/credits"
	"github.com/studiofit/booking-service/internal/service/credits/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgProfileNotFound    = "profile not found"
	msgNegativeBalance    = "credit balance cannot be negative"
)

type Handler struct {
	service CreditsService
	logger  Logger
}

func NewHandler(service CreditsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/credits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req models.AdjustCreditsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/credits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetBalance(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, creditsService.ErrProfileNotFound):
			h.logger.Warn("PUT /users/{id}/credits - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, creditsService.ErrNegativeBalance):
			h.logger.Warn("PUT /users/{id}/credits - Negative balance rejected: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgNegativeBalance)

		default:
			h.logger.Error("PUT /users/{id}/credits - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/credits - Balance set: user_id=%s, credits=%d", userID, result.Credits)
	handlers.RespondJSON(w, http.StatusOK, result)
}
