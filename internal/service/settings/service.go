package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiofit/booking-service/internal/domain"
	settingsRepo "github.com/studiofit/booking-service/internal/infra/storage/settings"
	"github.com/studiofit/booking-service/internal/service/settings/models"
)

// Service owns the studio-wide cancellation policy. A missing or
// unreadable policy row degrades to the permissive default so
// cancellations are never blocked by a configuration problem.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetCancellationPolicy returns the active policy.
func (s *Service) GetCancellationPolicy(ctx context.Context) (*models.PolicyResponse, error) {
	policy := s.ResolvePolicy(ctx)
	return models.FromDomainPolicy(&policy), nil
}

// ResolvePolicy loads the stored policy, falling back to the default on
// a missing or corrupt row.
func (s *Service) ResolvePolicy(ctx context.Context) domain.CancellationPolicy {
	policy, err := s.settingsRepo.GetCancellationPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Info("ResolvePolicy: no stored policy, using default")
		} else {
			s.logger.Error("ResolvePolicy: failed to load policy, using default: %v", err)
		}
		return domain.DefaultCancellationPolicy()
	}
	return *policy
}

// UpdateCancellationPolicy replaces the policy, recording who changed it.
func (s *Service) UpdateCancellationPolicy(ctx context.Context, req *models.UpdatePolicyRequest, updatedBy string) (*models.PolicyResponse, error) {
	s.logger.Info("UpdateCancellationPolicy: setting policy unit=%s value=%d by user=%s", req.Unit, req.Value, updatedBy)

	policy, err := req.ToDomainPolicy()
	if err != nil {
		s.logger.Warn("UpdateCancellationPolicy: invalid policy: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if err := s.settingsRepo.UpsertCancellationPolicy(ctx, policy, updatedBy); err != nil {
		s.logger.Error("UpdateCancellationPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCancellationPolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCancellationPolicy: policy updated to %d %s", policy.Value, policy.Unit)
	return models.FromDomainPolicy(&policy), nil
}
