package process_payment_request

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	ProcessRequest(ctx context.Context, requestID string, req *models.ProcessPaymentRequest) (*models.PaymentRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
