package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
	"github.com/studiofit/booking-service/internal/service/slots/models"
)

// Service manages the class slot catalogue.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create registers a new class slot. New slots start active.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating %s slot %s-%s capacity=%d", req.Kind, req.StartTime, req.EndTime, req.Capacity)

	slot, err := req.ToDomainSlot()
	if err != nil {
		s.logger.Warn("Create: invalid slot definition: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created slot id=%s", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID returns a single slot regardless of its active flag.
func (s *Service) GetByID(ctx context.Context, id string) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%s", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// List returns the slot catalogue. Clients see only active slots;
// staff pass includeInactive to see the full schedule.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots includeInactive=%t", includeInactive)

	slots, err := s.slotRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// Update changes a slot's capacity or active flag. Deactivating a slot
// keeps existing bookings intact; it only blocks new ones.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: updating slot id=%s", id)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: invalid update for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.slotRepo.UpdateCapacityAndActive(ctx, id, req.Capacity, req.Active)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated slot id=%s capacity=%d active=%t", updated.ID, updated.Capacity, updated.Active)
	return models.FromDomainSlot(updated), nil
}
