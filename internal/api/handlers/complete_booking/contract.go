package complete_booking

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Complete(ctx context.Context, bookingID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
