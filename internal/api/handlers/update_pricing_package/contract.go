package update_pricing_package

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	SetPricingPackageActive(ctx context.Context, packageID string, req *models.UpdatePricingPackageRequest) (*models.PricingPackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
