package restore_booking

import (
	"context"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	CountConfirmed(ctx context.Context, timeSlotID string, date time.Time) (int, error)
	UpdateStatusFrom(ctx context.Context, id string, from, to domain.BookingStatus) error
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

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
