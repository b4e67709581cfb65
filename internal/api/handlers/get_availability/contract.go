package get_availability

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	GetForDate(ctx context.Context, slotID string, dateStr string) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
