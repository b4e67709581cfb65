package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	slots map[string]*domain.TimeSlot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

type fakeBookingRepo struct {
	confirmed int
	calls     int
}

func (r *fakeBookingRepo) CountConfirmed(_ context.Context, _ string, _ time.Time) (int, error) {
	r.calls++
	return r.confirmed, nil
}

type fakeCache struct {
	entries map[string]*domain.Availability
	sets    int
}

func cacheKey(slotID string, date time.Time) string {
	return slotID + "|" + date.Format(domain.DateFormat)
}

func (c *fakeCache) Get(_ context.Context, slotID string, date time.Time) (*domain.Availability, bool) {
	a, ok := c.entries[cacheKey(slotID, date)]
	return a, ok
}

func (c *fakeCache) Set(_ context.Context, a *domain.Availability) {
	c.sets++
	c.entries[cacheKey(a.TimeSlotID, a.Date)] = a
}

func (c *fakeCache) Invalidate(_ context.Context, slotID string, date time.Time) {
	delete(c.entries, cacheKey(slotID, date))
}

func testSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        "slot-1",
		Kind:      domain.SlotRecurring,
		DayOfWeek: 3, // Wednesday
		StartTime: "10:00",
		EndTime:   "11:00",
		Capacity:  10,
		Active:    true,
	}
}

func TestGetForDate_CountsRemainingSeats(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	bookings := &fakeBookingRepo{confirmed: 4}
	svc := NewService(slots, bookings, nil, &testLogger{})

	resp, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-12")

	require.NoError(t, err)
	assert.Equal(t, 10, resp.Capacity)
	assert.Equal(t, 4, resp.Booked)
	assert.Equal(t, 6, resp.Available)
	assert.Equal(t, "2025-03-12", resp.Date)
}

func TestGetForDate_ClampsAtZero(t *testing.T) {
	// Overbooked counts can briefly appear while a cancel settles.
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	bookings := &fakeBookingRepo{confirmed: 12}
	svc := NewService(slots, bookings, nil, &testLogger{})

	resp, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-12")

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Available)
}

func TestGetForDate_NonOccurrenceDateResolvesEmpty(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	bookings := &fakeBookingRepo{confirmed: 0}
	svc := NewService(slots, bookings, nil, &testLogger{})

	// 2025-03-13 is a Thursday; the slot runs on Wednesdays. Any
	// calendar date still resolves, with no bookings to count.
	resp, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-13")

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Booked)
	assert.Equal(t, 10, resp.Available)
}

func TestGetForDate_SlotNotFound(t *testing.T) {
	svc := NewService(&fakeSlotRepo{slots: map[string]*domain.TimeSlot{}}, &fakeBookingRepo{}, nil, &testLogger{})

	_, err := svc.GetForDate(context.Background(), "missing", "2025-03-12")

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetForDate_BadDate(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	svc := NewService(slots, &fakeBookingRepo{}, nil, &testLogger{})

	_, err := svc.GetForDate(context.Background(), "slot-1", "12/03/2025")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetForDate_CacheHitSkipsCount(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	bookings := &fakeBookingRepo{confirmed: 4}
	cache := &fakeCache{entries: make(map[string]*domain.Availability)}
	svc := NewService(slots, bookings, cache, &testLogger{})

	// First call misses, resolves and populates the cache.
	resp, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Available)
	assert.Equal(t, 1, bookings.calls)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache.
	resp, err = svc.GetForDate(context.Background(), "slot-1", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Available)
	assert.Equal(t, 1, bookings.calls)
}

func TestGetForDate_InvalidateForcesRecount(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{"slot-1": testSlot()}}
	bookings := &fakeBookingRepo{confirmed: 4}
	cache := &fakeCache{entries: make(map[string]*domain.Availability)}
	svc := NewService(slots, bookings, cache, &testLogger{})

	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-12")
	require.NoError(t, err)

	bookings.confirmed = 5
	cache.Invalidate(context.Background(), "slot-1", date)

	resp, err := svc.GetForDate(context.Background(), "slot-1", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Booked)
	assert.Equal(t, 2, bookings.calls)
}
