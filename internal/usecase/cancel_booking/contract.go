package cancel_booking

import (
	"context"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/types"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id string, from, to domain.BookingStatus) error
}

type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
}

type ProfileRepository interface {
	AddCredits(ctx context.Context, userID string, n int) error
}

// PolicyProvider resolves the active cancellation policy, falling back
// to the permissive default when none is stored.
type PolicyProvider interface {
	ResolvePolicy(ctx context.Context) domain.CancellationPolicy
}

// PolicyEngine decides whether a cancellation is still inside the window.
type PolicyEngine interface {
	IsWithinWindow(policy domain.CancellationPolicy, bookingDate time.Time, startTime types.TimeString, now time.Time) (bool, error)
}

type AvailabilityCache interface {
	Invalidate(ctx context.Context, slotID string, date time.Time)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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
