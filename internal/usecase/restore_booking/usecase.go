package restore_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
)

// BookingCost is the credit debited when a cancelled booking comes back.
const BookingCost = 1

// UseCase restores a cancelled booking. Restore is not a plain status
// flip: the seat may have been rebooked and the refunded credit spent,
// so both checks run again inside the transaction, exactly as they do
// on creation.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	profileRepo ProfileRepository
	cache       AvailabilityCache
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	profileRepo ProfileRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		profileRepo: profileRepo,
		cache:       cache,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute runs the restore transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RestoreBooking: booking=%s", req.BookingID)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RestoreBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RestoreBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeRestored() {
			uc.logger.Warn("RestoreBooking: booking id=%s is %s, not cancelled", req.BookingID, booking.Status)
			return ErrNotCancelled
		}

		slot, err := uc.slotRepo.GetByID(txCtx, booking.TimeSlotID)
		if err != nil {
			uc.logger.Error("RestoreBooking: failed to get slot id=%s: %v", booking.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Seat re-validation: others may have booked since cancellation.
		booked, err := uc.bookingRepo.CountConfirmed(txCtx, booking.TimeSlotID, booking.BookingDate)
		if err != nil {
			uc.logger.Error("RestoreBooking: seat count failed: %v", err)
			return fmt.Errorf("%w: seat count failed: %v", ErrInternal, err)
		}
		if booked >= slot.Capacity {
			uc.logger.Warn("RestoreBooking: slot=%s full on %s, %d/%d seats taken",
				booking.TimeSlotID, booking.BookingDate.Format(domain.DateFormat), booked, slot.Capacity)
			return ErrSlotFull
		}

		// Credit re-validation: the refund may already be spent.
		profile, err := uc.profileRepo.GetByID(txCtx, booking.UserID)
		if err != nil {
			uc.logger.Error("RestoreBooking: failed to get profile id=%s: %v", booking.UserID, err)
			return fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
		}
		if !profile.HasCredits(BookingCost) {
			uc.logger.Warn("RestoreBooking: user=%s has insufficient credits (%d)", booking.UserID, profile.Credits)
			return ErrInsufficientCredits
		}

		err = uc.bookingRepo.UpdateStatusFrom(txCtx, req.BookingID, domain.StatusCancelled, domain.StatusConfirmed)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("RestoreBooking: booking id=%s lost status race", req.BookingID)
				return ErrNotCancelled
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RestoreBooking: failed to restore booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to restore booking: %v", ErrInternal, err)
		}

		if err := uc.profileRepo.DebitCredits(txCtx, booking.UserID, BookingCost); err != nil {
			if errors.Is(err, profileRepo.ErrInsufficientCredits) {
				uc.logger.Warn("RestoreBooking: debit lost race for user=%s", booking.UserID)
				return ErrInsufficientCredits
			}
			uc.logger.Error("RestoreBooking: failed to debit credits for user=%s: %v", booking.UserID, err)
			return fmt.Errorf("%w: failed to debit credits: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, result.TimeSlotID, result.BookingDate)
	}

	uc.logger.Info("RestoreBooking: restored booking id=%s for user=%s", result.ID, result.UserID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		TimeSlotID:  result.TimeSlotID,
		BookingDate: result.BookingDate,
		Status:      string(result.Status),
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
