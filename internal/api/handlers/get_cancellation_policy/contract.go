package get_cancellation_policy

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/settings/models"
)

type SettingsService interface {
	GetCancellationPolicy(ctx context.Context) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
