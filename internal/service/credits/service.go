package credits

import (
	"context"
	"errors"
	"fmt"

	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	"github.com/studiofit/booking-service/internal/service/credits/models"
)

// Service exposes the member credit ledger to staff.
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile returns a member profile with the current balance.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile id=%s", userID)

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile id=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetProfile: repository error for profile id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// SetBalance overwrites a member's balance with an absolute value.
// Negative targets are rejected before touching storage.
func (s *Service) SetBalance(ctx context.Context, userID string, req *models.AdjustCreditsRequest) (*models.ProfileResponse, error) {
	s.logger.Info("SetBalance: setting credits=%d for user=%s", req.Credits, userID)

	if req.Credits < 0 {
		s.logger.Warn("SetBalance: rejected negative balance %d for user=%s", req.Credits, userID)
		return nil, ErrNegativeBalance
	}

	if err := s.profileRepo.SetCredits(ctx, userID, req.Credits); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("SetBalance: profile id=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("SetBalance: repository error for profile id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: SetBalance - repository error: %v", ErrInternal, err)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("SetBalance: reload error for profile id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: SetBalance - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetBalance: user=%s now has %d credits", userID, profile.Credits)
	return models.FromDomainProfile(profile), nil
}
