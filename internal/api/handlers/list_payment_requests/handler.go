package list_payment_requests

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

const msgInvalidStatus = "invalid status filter"

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

// Handle GET /api/v1/payment-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListPaymentRequestsRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListRequests(r.Context(), req)
	if err != nil {
		if errors.Is(err, paymentsService.ErrInvalidInput) {
			h.logger.Warn("GET /payment-requests - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /payment-requests - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /payment-requests - Fetched %d requests", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
