package cancel_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	"github.com/studiofit/booking-service/internal/service/policy"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

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

type fakeSlotRepo struct {
	slots map[string]*domain.TimeSlot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	return r.slots[id], nil
}

type fakeProfileRepo struct {
	credits map[string]int
}

func (r *fakeProfileRepo) AddCredits(_ context.Context, userID string, n int) error {
	r.credits[userID] += n
	return nil
}

type fakePolicyProvider struct {
	policy domain.CancellationPolicy
}

func (p *fakePolicyProvider) ResolvePolicy(_ context.Context) domain.CancellationPolicy {
	return p.policy
}

type fakeCache struct {
	invalidated int
}

func (c *fakeCache) Invalidate(_ context.Context, _ string, _ time.Time) {
	c.invalidated++
}

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	profiles *fakeProfileRepo
	provider *fakePolicyProvider
	cache    *fakeCache
	clock    *stubClock
}

// newFixture holds a confirmed booking for user-1 on a Wednesday 10:00
// class. The clock reads Monday noon, 46 hours before class start, and
// the policy requires 24 hours of lead time.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	bookings := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": {
			ID:          "booking-1",
			UserID:      "user-1",
			TimeSlotID:  "slot-1",
			BookingDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusConfirmed,
		},
	}}
	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot-1": {
			ID:        "slot-1",
			Kind:      domain.SlotRecurring,
			DayOfWeek: 3,
			StartTime: "10:00",
			EndTime:   "11:00",
			Capacity:  10,
			Active:    true,
		},
	}}
	profiles := &fakeProfileRepo{credits: map[string]int{"user-1": 0}}
	provider := &fakePolicyProvider{policy: domain.CancellationPolicy{Unit: domain.UnitHours, Value: 24}}
	cache := &fakeCache{}
	clock := &stubClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

	uc := NewUseCase(bookings, slots, profiles, provider,
		policy.NewEngine(time.UTC), cache, &fakeTxManager{}, &testLogger{})
	uc.timeProvider = clock

	return &fixture{uc: uc, bookings: bookings, profiles: profiles, provider: provider, cache: cache, clock: clock}
}

func TestCancelBooking_WithinWindow(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, f.bookings.bookings["booking-1"].Status)
	assert.Equal(t, 1, f.profiles.credits["user-1"])
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestCancelBooking_WindowExpired(t *testing.T) {
	f := newFixture(t)

	// 20 hours before class start, inside the 24-hour lead time.
	f.clock.now = time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})

	assert.ErrorIs(t, err, ErrWindowExpired)
	assert.Equal(t, domain.StatusConfirmed, f.bookings.bookings["booking-1"].Status)
	assert.Equal(t, 0, f.profiles.credits["user-1"])
}

func TestCancelBooking_WindowBoundary(t *testing.T) {
	f := newFixture(t)

	// Exactly 24 hours before start counts as expired.
	f.clock.now = time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})

	assert.ErrorIs(t, err, ErrWindowExpired)
}

func TestCancelBooking_ZeroLeadAlwaysAllowed(t *testing.T) {
	f := newFixture(t)
	f.provider.policy = domain.CancellationPolicy{Unit: domain.UnitHours, Value: 0}

	// One minute before class start.
	f.clock.now = time.Date(2025, 3, 12, 9, 59, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, 1, f.profiles.credits["user-1"])
}

func TestCancelBooking_StaffBypassesWindow(t *testing.T) {
	f := newFixture(t)

	// Past the window for members; staff cancel regardless and the
	// refund still applies.
	f.clock.now = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "admin-1", IsStaff: true})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 1, f.profiles.credits["user-1"])
}

func TestCancelBooking_NotOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-2"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusConfirmed, f.bookings.bookings["booking-1"].Status)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings["booking-1"].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})

	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Equal(t, 0, f.profiles.credits["user-1"])
}

func TestCancelBooking_AlreadyCompleted(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings["booking-1"].Status = domain.StatusCompleted

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "admin-1", IsStaff: true})

	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestCancelBooking_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "missing", ActorID: "user-1"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_DaysUnitPolicy(t *testing.T) {
	f := newFixture(t)
	f.provider.policy = domain.CancellationPolicy{Unit: domain.UnitDays, Value: 1}

	// 46 hours ahead clears a one-day lead time.
	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1", ActorID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestCancelBooking_MissingInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BookingID: "booking-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
