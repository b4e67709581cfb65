package list_payment_requests

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	ListRequests(ctx context.Context, req *models.ListPaymentRequestsRequest) (*models.PaymentRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
