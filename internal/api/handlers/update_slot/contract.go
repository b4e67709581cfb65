package update_slot

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/slots/models"
)

type SlotsService interface {
	Update(ctx context.Context, id string, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
