package create_pricing_package

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPackage     = "invalid pricing package"
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

// Handle POST /api/v1/pricing-packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePricingPackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePricingPackage(r.Context(), &req)
	if err != nil {
		if errors.Is(err, paymentsService.ErrInvalidInput) {
			h.logger.Warn("POST /pricing-packages - Invalid package: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPackage)
			return
		}
		h.logger.Error("POST /pricing-packages - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /pricing-packages - Package created: package_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
