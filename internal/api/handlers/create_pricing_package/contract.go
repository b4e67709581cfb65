package create_pricing_package

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	CreatePricingPackage(ctx context.Context, req *models.CreatePricingPackageRequest) (*models.PricingPackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
