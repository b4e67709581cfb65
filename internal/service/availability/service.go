package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
	"github.com/studiofit/booking-service/internal/service/availability/models"
)

// Service derives remaining seats from confirmed bookings. The numbers
// it returns are display hints; the booking transaction recounts under
// a lock before committing.
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	cache       AvailabilityCache
	logger      Logger
}

func NewService(slotRepo SlotRepository, bookingRepo BookingRepository, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetForDate resolves availability for one slot occurrence.
func (s *Service) GetForDate(ctx context.Context, slotID string, dateStr string) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetForDate: resolving availability for slot=%s date=%s", slotID, dateStr)

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("GetForDate: bad date %q: %v", dateStr, err)
		return nil, fmt.Errorf("%w: bad date: %v", ErrInvalidInput, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetForDate: slot id=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetForDate: repository error for slot id=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetForDate - repository error: %v", ErrInternal, err)
	}

	// Any calendar date resolves. A date the slot never occurs on
	// simply has zero confirmed bookings, so remaining equals capacity.
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, slotID, date); ok {
			return models.FromDomainAvailability(cached), nil
		}
	}

	result, err := s.Resolve(ctx, slot, date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, result)
	}

	return models.FromDomainAvailability(result), nil
}

// Resolve counts confirmed bookings and clamps remaining seats at zero.
// Cancelled and completed bookings never consume a seat.
func (s *Service) Resolve(ctx context.Context, slot *domain.TimeSlot, date time.Time) (*domain.Availability, error) {
	booked, err := s.bookingRepo.CountConfirmed(ctx, slot.ID, date)
	if err != nil {
		s.logger.Error("Resolve: count error for slot id=%s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return domain.NewAvailability(slot.ID, date, slot.Capacity, booked), nil
}
