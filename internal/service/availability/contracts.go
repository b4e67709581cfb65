package availability

import (
	"context"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
}

type BookingRepository interface {
	CountConfirmed(ctx context.Context, timeSlotID string, date time.Time) (int, error)
}

// AvailabilityCache is an advisory read-through cache. Implementations
// must never fail a request; errors are swallowed and logged.
type AvailabilityCache interface {
	Get(ctx context.Context, slotID string, date time.Time) (*domain.Availability, bool)
	Set(ctx context.Context, availability *domain.Availability)
	Invalidate(ctx context.Context, slotID string, date time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
