package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
)

// BookingCost is the flat price of one class in credits.
const BookingCost = 1

// UseCase books one seat in a class occurrence and debits one credit,
// atomically. Seat counting, the duplicate check and the debit all run
// inside one serializable transaction; the partial unique index on
// confirmed bookings and the conditional debit back the same rules at
// the storage level, so a racing request loses cleanly instead of
// overbooking or double charging.
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	profileRepo  ProfileRepository
	cache        AvailabilityCache
	txManager    TransactionManager
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	profileRepo ProfileRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		profileRepo:  profileRepo,
		cache:        cache,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// Execute runs the booking transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, slot=%s, date=%s",
		req.UserID, req.TimeSlotID, req.Date.Format(domain.DateFormat))

	// 1. Input validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.loc); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 2. Resolve the slot and check it matches the date.
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%s not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if err := validateSlotForDate(slot, req.Date); err != nil {
		uc.logger.Warn("CreateBooking: slot id=%s rejected for date %s: %v",
			req.TimeSlotID, req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	var result *domain.Booking
	var remainingCredits int

	// 3. Seat arbitration and the credit debit in one serializable
	// transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Duplicate check: one confirmed booking per member per
		// slot occurrence.
		hasBooking, err := uc.bookingRepo.HasConfirmed(txCtx, req.UserID, req.TimeSlotID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: duplicate check failed: %v", err)
			return fmt.Errorf("%w: duplicate check failed: %v", ErrInternal, err)
		}
		if hasBooking {
			uc.logger.Warn("CreateBooking: user=%s already booked slot=%s on %s",
				req.UserID, req.TimeSlotID, req.Date.Format(domain.DateFormat))
			return ErrDuplicateBooking
		}

		// 3.2. Balance check before touching the ledger, so an empty
		// wallet reports as a credit error rather than a debit failure.
		profile, err := uc.profileRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				uc.logger.Warn("CreateBooking: profile id=%s not found", req.UserID)
				return ErrProfileNotFound
			}
			uc.logger.Error("CreateBooking: failed to get profile id=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
		}
		if !profile.HasCredits(BookingCost) {
			uc.logger.Warn("CreateBooking: user=%s has insufficient credits (%d)", req.UserID, profile.Credits)
			return ErrInsufficientCredits
		}

		// 3.3. Seat check under lock.
		booked, err := uc.bookingRepo.CountConfirmed(txCtx, req.TimeSlotID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: seat count failed: %v", err)
			return fmt.Errorf("%w: seat count failed: %v", ErrInternal, err)
		}
		if booked >= slot.Capacity {
			uc.logger.Warn("CreateBooking: slot=%s full on %s, %d/%d seats taken",
				req.TimeSlotID, req.Date.Format(domain.DateFormat), booked, slot.Capacity)
			return ErrSlotFull
		}

		uc.logger.Info("CreateBooking: slot=%s has %d/%d seats taken", req.TimeSlotID, booked, slot.Capacity)

		// 3.4. Insert the booking. The partial unique index catches
		// duplicates that slipped past the check above.
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:      req.UserID,
			TimeSlotID:  req.TimeSlotID,
			BookingDate: req.Date,
			Status:      domain.StatusConfirmed,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				uc.logger.Warn("CreateBooking: duplicate insert for user=%s slot=%s", req.UserID, req.TimeSlotID)
				return ErrDuplicateBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.5. Debit the credit. The conditional update keeps the
		// balance non-negative even under races.
		if err := uc.profileRepo.DebitCredits(txCtx, req.UserID, BookingCost); err != nil {
			if errors.Is(err, profileRepo.ErrInsufficientCredits) {
				uc.logger.Warn("CreateBooking: debit lost race for user=%s", req.UserID)
				return ErrInsufficientCredits
			}
			uc.logger.Error("CreateBooking: failed to debit credits for user=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to debit credits: %v", ErrInternal, err)
		}

		result = created
		remainingCredits = profile.Credits - BookingCost
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, req.TimeSlotID, req.Date)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, user=%s has %d credits left",
		result.ID, result.UserID, remainingCredits)

	return &Response{
		ID:               result.ID,
		UserID:           result.UserID,
		TimeSlotID:       result.TimeSlotID,
		BookingDate:      result.BookingDate,
		Status:           string(result.Status),
		RemainingCredits: remainingCredits,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
