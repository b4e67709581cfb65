package process_payment_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRequestNotFound    = "payment request not found"
	msgAlreadyProcessed   = "payment request already processed"
	msgProfileNotFound    = "profile not found"
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

// Handle PATCH /api/v1/payment-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var req models.ProcessPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payment-requests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.ProcessedBy = middleware.UserIDFromContext(r.Context())

	result, err := h.service.ProcessRequest(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrRequestNotFound):
			h.logger.Warn("PATCH /payment-requests/{id} - Not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, paymentsService.ErrAlreadyProcessed):
			h.logger.Warn("PATCH /payment-requests/{id} - Already processed: request_id=%s", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, paymentsService.ErrProfileNotFound):
			h.logger.Warn("PATCH /payment-requests/{id} - Profile missing: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /payment-requests/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /payment-requests/{id} - Failed: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /payment-requests/{id} - Request %s: request_id=%s", result.Status, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
