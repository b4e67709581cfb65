package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
)

// RefundAmount is the credit returned for a cancelled booking.
const RefundAmount = 1

// UseCase cancels a confirmed booking and refunds the credit. The
// status transition and the refund run in one transaction; the
// conditional state update makes a concurrent cancel or complete lose
// with a status conflict instead of refunding twice.
type UseCase struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	profileRepo    ProfileRepository
	policyProvider PolicyProvider
	policyEngine   PolicyEngine
	cache          AvailabilityCache
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	profileRepo ProfileRepository,
	policyProvider PolicyProvider,
	policyEngine PolicyEngine,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		slotRepo:       slotRepo,
		profileRepo:    profileRepo,
		policyProvider: policyProvider,
		policyEngine:   policyEngine,
		cache:          cache,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute runs the cancellation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%s by user=%s staff=%t", req.BookingID, req.ActorID, req.IsStaff)

	if req.BookingID == "" || req.ActorID == "" {
		return nil, fmt.Errorf("%w: bookingID and actorID are required", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsTerminal() {
			uc.logger.Warn("CancelBooking: booking id=%s already %s", req.BookingID, booking.Status)
			return ErrAlreadyTerminal
		}

		if !req.IsStaff {
			if booking.UserID != req.ActorID {
				uc.logger.Warn("CancelBooking: user=%s does not own booking id=%s", req.ActorID, req.BookingID)
				return ErrAccessDenied
			}

			if err := uc.checkWindow(txCtx, booking); err != nil {
				return err
			}
		}

		err = uc.bookingRepo.UpdateStatusFrom(txCtx, req.BookingID, domain.StatusConfirmed, domain.StatusCancelled)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("CancelBooking: booking id=%s lost status race", req.BookingID)
				return ErrAlreadyTerminal
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to cancel booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		if err := uc.profileRepo.AddCredits(txCtx, booking.UserID, RefundAmount); err != nil {
			uc.logger.Error("CancelBooking: failed to refund user=%s: %v", booking.UserID, err)
			return fmt.Errorf("%w: failed to refund credits: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, result.TimeSlotID, result.BookingDate)
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%s, refunded %d credit to user=%s",
		result.ID, RefundAmount, result.UserID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		TimeSlotID:  result.TimeSlotID,
		BookingDate: result.BookingDate,
		Status:      string(result.Status),
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// checkWindow enforces the cancellation policy for member-initiated
// cancellations. The slot's wall-clock start time is anchored to the
// booking date in the studio timezone and compared against the server
// clock.
func (uc *UseCase) checkWindow(ctx context.Context, booking *domain.Booking) error {
	slot, err := uc.slotRepo.GetByID(ctx, booking.TimeSlotID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get slot id=%s: %v", booking.TimeSlotID, err)
		return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	policy := uc.policyProvider.ResolvePolicy(ctx)

	within, err := uc.policyEngine.IsWithinWindow(policy, booking.BookingDate, slot.StartTime, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("CancelBooking: window check failed for booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: window check failed: %v", ErrInternal, err)
	}
	if !within {
		uc.logger.Warn("CancelBooking: window expired for booking id=%s (policy %d %s)",
			booking.ID, policy.Value, policy.Unit)
		return ErrWindowExpired
	}

	return nil
}
