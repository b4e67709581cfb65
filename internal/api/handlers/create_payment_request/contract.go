package create_payment_request

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	CreateRequest(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
