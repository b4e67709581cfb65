package list_pricing_packages

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	ListPricingPackages(ctx context.Context) (*models.PricingPackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
