package list_pricing_packages

import (
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/pricing-packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPricingPackages(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing-packages - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing-packages - Fetched %d packages", len(result.Packages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
