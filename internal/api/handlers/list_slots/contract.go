package list_slots

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/slots/models"
)

type SlotsService interface {
	List(ctx context.Context, includeInactive bool) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
