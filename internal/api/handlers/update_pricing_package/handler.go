package update_pricing_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidUpdate      = "invalid package update"
	msgPackageNotFound    = "pricing package not found"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/pricing-packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	var req models.UpdatePricingPackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /pricing-packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetPricingPackageActive(r.Context(), packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPackageNotFound):
			h.logger.Warn("PATCH /pricing-packages/{id} - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /pricing-packages/{id} - Invalid update: package_id=%s, %v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidUpdate)

		default:
			h.logger.Error("PATCH /pricing-packages/{id} - Failed: package_id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /pricing-packages/{id} - Package updated: package_id=%s, active=%t", result.ID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
