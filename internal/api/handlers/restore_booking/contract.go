package restore_booking

import (
	"context"

	restoreBooking "github.com/studiofit/booking-service/internal/usecase/restore_booking"
)

type RestoreBookingUseCase interface {
	Execute(ctx context.Context, req *restoreBooking.Request) (*restoreBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
