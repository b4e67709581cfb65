package slots

import (
	"context"

	"github.com/studiofit/booking-service/internal/domain"
)

// SlotRepository is the slice of the time slot store this service needs.
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.TimeSlot, error)
	UpdateCapacityAndActive(ctx context.Context, id string, capacity *int, active *bool) (*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
