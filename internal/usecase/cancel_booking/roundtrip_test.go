package cancel_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	"github.com/studiofit/booking-service/internal/service/policy"
	createBooking "github.com/studiofit/booking-service/internal/usecase/create_booking"
)

// memBookingStore backs both the create and the cancel flows so a
// composed scenario observes one consistent set of rows.
type memBookingStore struct {
	seq      int
	bookings map[string]*domain.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: map[string]*domain.Booking{}}
}

func (s *memBookingStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.seq++
	stored := *b
	stored.ID = fmt.Sprintf("booking-%d", s.seq)
	stored.Status = domain.StatusConfirmed
	s.bookings[stored.ID] = &stored

	created := stored
	return &created, nil
}

func (s *memBookingStore) HasConfirmed(_ context.Context, userID, slotID string, date time.Time) (bool, error) {
	for _, b := range s.bookings {
		if b.UserID == userID && b.TimeSlotID == slotID && b.BookingDate.Equal(date) && b.Status == domain.StatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

func (s *memBookingStore) CountConfirmed(_ context.Context, slotID string, date time.Time) (int, error) {
	count := 0
	for _, b := range s.bookings {
		if b.TimeSlotID == slotID && b.BookingDate.Equal(date) && b.Status == domain.StatusConfirmed {
			count++
		}
	}
	return count, nil
}

func (s *memBookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *memBookingStore) UpdateStatusFrom(_ context.Context, id string, from, to domain.BookingStatus) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

type memProfileStore struct {
	credits map[string]int
}

func (s *memProfileStore) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	credits, ok := s.credits[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return &domain.Profile{ID: id, Credits: credits}, nil
}

func (s *memProfileStore) DebitCredits(_ context.Context, userID string, n int) error {
	if s.credits[userID] < n {
		return profileRepo.ErrInsufficientCredits
	}
	s.credits[userID] -= n
	return nil
}

func (s *memProfileStore) AddCredits(_ context.Context, userID string, n int) error {
	s.credits[userID] += n
	return nil
}

func TestCreateThenCancel_RestoresCreditsAndSeat(t *testing.T) {
	occurrence := time.Now().UTC().AddDate(0, 0, 30)
	occurrence = time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(), 0, 0, 0, 0, time.UTC)

	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot-1": {
			ID:           "slot-1",
			Kind:         domain.SlotSpecificDate,
			SpecificDate: &occurrence,
			StartTime:    "10:00",
			EndTime:      "11:00",
			Capacity:     5,
			Active:       true,
		},
	}}
	store := newMemBookingStore()
	profiles := &memProfileStore{credits: map[string]int{"user-1": 3}}
	cache := &fakeCache{}
	tx := &fakeTxManager{}

	createUC := createBooking.NewUseCase(store, slots, profiles, cache, tx, time.UTC, &testLogger{})
	provider := &fakePolicyProvider{policy: domain.CancellationPolicy{Unit: domain.UnitHours, Value: 24}}
	cancelUC := NewUseCase(store, slots, profiles, provider, policy.NewEngine(time.UTC), cache, tx, &testLogger{})

	created, err := createUC.Execute(context.Background(), &createBooking.Request{
		UserID:     "user-1",
		TimeSlotID: "slot-1",
		Date:       occurrence,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.RemainingCredits)

	booked, err := store.CountConfirmed(context.Background(), "slot-1", occurrence)
	require.NoError(t, err)
	require.Equal(t, 1, booked)

	cancelled, err := cancelUC.Execute(context.Background(), &Request{
		BookingID: created.ID,
		ActorID:   "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	// The spent credit comes back and the seat frees up.
	assert.Equal(t, 3, profiles.credits["user-1"])
	booked, err = store.CountConfirmed(context.Background(), "slot-1", occurrence)
	require.NoError(t, err)
	assert.Equal(t, 0, booked)
}
