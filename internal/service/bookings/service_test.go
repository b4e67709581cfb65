package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	"github.com/studiofit/booking-service/internal/service/bookings/models"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.TimeSlotID != nil && b.TimeSlotID != *filter.TimeSlotID {
			continue
		}
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && b.Status == domain.StatusCancelled {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusFrom(_ context.Context, id string, from, to domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

type fakeCache struct {
	invalidated int
}

func (c *fakeCache) Invalidate(_ context.Context, _ string, _ time.Time) {
	c.invalidated++
}

func testBooking(id, userID string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		TimeSlotID:  "slot-1",
		BookingDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

func newService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo, *fakeCache) {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	cache := &fakeCache{}
	return NewService(repo, cache, &testLogger{}), repo, cache
}

func TestComplete_Success(t *testing.T) {
	svc, repo, cache := newService(testBooking("booking-1", "user-1", domain.StatusConfirmed))

	resp, err := svc.Complete(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.bookings["booking-1"].Status)
	assert.Equal(t, 1, cache.invalidated)
}

func TestComplete_AlreadyCancelled(t *testing.T) {
	svc, _, cache := newService(testBooking("booking-1", "user-1", domain.StatusCancelled))

	_, err := svc.Complete(context.Background(), "booking-1")

	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Equal(t, 0, cache.invalidated)
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	svc, _, _ := newService(testBooking("booking-1", "user-1", domain.StatusCompleted))

	_, err := svc.Complete(context.Background(), "booking-1")

	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestComplete_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Complete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, _, _ := newService(
		testBooking("booking-1", "user-1", domain.StatusConfirmed),
		testBooking("booking-2", "user-1", domain.StatusCancelled),
		testBooking("booking-3", "user-2", domain.StatusConfirmed),
	)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	cancelled := "cancelled"
	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1", Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-2", resp.Bookings[0].ID)

	bad := "pending"
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1", Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_DefaultExcludesCancelled(t *testing.T) {
	svc, _, _ := newService(
		testBooking("booking-1", "user-1", domain.StatusConfirmed),
		testBooking("booking-2", "user-2", domain.StatusCancelled),
	)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)

	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestList_ExplicitStatusWins(t *testing.T) {
	svc, _, _ := newService(
		testBooking("booking-1", "user-1", domain.StatusConfirmed),
		testBooking("booking-2", "user-2", domain.StatusCancelled),
	)

	cancelled := "cancelled"
	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-2", resp.Bookings[0].ID)
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _, _ := newService()

	bad := "archived"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
