package settings

import (
	"context"

	"github.com/studiofit/booking-service/internal/domain"
)

type SettingsRepository interface {
	GetCancellationPolicy(ctx context.Context) (*domain.CancellationPolicy, error)
	UpsertCancellationPolicy(ctx context.Context, policy domain.CancellationPolicy, updatedBy string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
