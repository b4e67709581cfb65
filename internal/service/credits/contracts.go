package credits

import (
	"context"

	"github.com/studiofit/booking-service/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	SetCredits(ctx context.Context, userID string, credits int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
