package create_booking

import (
	"context"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasConfirmed(ctx context.Context, userID, timeSlotID string, date time.Time) (bool, error)
	CountConfirmed(ctx context.Context, timeSlotID string, date time.Time) (int, error)
}

type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	DebitCredits(ctx context.Context, userID string, n int) error
}

type AvailabilityCache interface {
	Invalidate(ctx context.Context, slotID string, date time.Time)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for tests.
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
