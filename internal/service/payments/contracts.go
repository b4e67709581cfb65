package payments

import (
	"context"

	"github.com/studiofit/booking-service/internal/domain"
)

type PaymentRequestRepository interface {
	Create(ctx context.Context, request *domain.PaymentRequest) (*domain.PaymentRequest, error)
	GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error)
	List(ctx context.Context, status *domain.PaymentRequestStatus) ([]*domain.PaymentRequest, error)
	MarkProcessed(ctx context.Context, id string, status domain.PaymentRequestStatus, processedBy string, notes *string) (*domain.PaymentRequest, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	AddCredits(ctx context.Context, userID string, n int) error
}

type PricingRepository interface {
	Create(ctx context.Context, pkg *domain.PricingPackage) (*domain.PricingPackage, error)
	GetByID(ctx context.Context, id string) (*domain.PricingPackage, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.PricingPackage, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.PricingPackage, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
