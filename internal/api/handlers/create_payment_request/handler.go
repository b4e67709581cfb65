package create_payment_request

import (
	"errors"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	paymentsService "github.com/studiofit/booking-service/internal/service/payments"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAmount      = "invalid credit amount"
	msgProfileNotFound    = "profile not found"
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

// Handle POST /api/v1/payment-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = middleware.UserIDFromContext(r.Context())

	result, err := h.service.CreateRequest(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrProfileNotFound):
			h.logger.Warn("POST /payment-requests - Profile not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, paymentsService.ErrPackageNotFound):
			h.logger.Warn("POST /payment-requests - Package not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("POST /payment-requests - Invalid amount: user_id=%s, %v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /payment-requests - Failed: user_id=%s, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-requests - Request created: request_id=%s, user_id=%s", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
