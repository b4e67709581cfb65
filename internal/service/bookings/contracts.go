package bookings

import (
	"context"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id string, from, to domain.BookingStatus) error
}

type AvailabilityCache interface {
	Invalidate(ctx context.Context, slotID string, date time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
