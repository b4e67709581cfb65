package adjust_credits

import (
	"context"

	"github.com/studiofit/booking-service/internal/service/credits/models"
)

type CreditsService interface {
	SetBalance(ctx context.Context, userID string, req *models.AdjustCreditsRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
