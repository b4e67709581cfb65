package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	"github.com/studiofit/booking-service/internal/service/bookings/models"
)

// Service covers booking queries and the staff-only completion
// transition. Creation, cancellation and restore carry credit effects
// and live in their own usecases.
type Service struct {
	bookingRepo BookingRepository
	cache       AvailabilityCache
	logger      Logger
}

func NewService(bookingRepo BookingRepository, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetUserBookings returns a member's booking history, optionally
// filtered by status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List is the staff roster query with flexible filtering.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings slot=%v date=%v user=%v status=%v includeInactive=%t",
		req.TimeSlotID, req.Date, req.UserID, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Complete marks an attended booking as completed. The seat was
// consumed at creation and the credit stays spent, so no ledger or
// count changes happen here beyond the cache nudge.
func (s *Service) Complete(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%s cannot be completed, status=%s", bookingID, booking.Status)
		return nil, ErrAlreadyTerminal
	}

	err = s.bookingRepo.UpdateStatusFrom(ctx, bookingID, domain.StatusConfirmed, domain.StatusCompleted)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("Complete: booking id=%s lost status race", bookingID)
			return nil, ErrAlreadyTerminal
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCompleted

	if s.cache != nil {
		s.cache.Invalidate(ctx, booking.TimeSlotID, booking.BookingDate)
	}

	s.logger.Info("Complete: completed booking id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}
