package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	bookingRepo "github.com/studiofit/booking-service/internal/infra/storage/booking"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
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
	mu        sync.Mutex
	seq       int
	confirmed map[string]bool // userID|slotID|date
	bookings  []*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{confirmed: make(map[string]bool)}
}

func bookingKey(userID, slotID string, date time.Time) string {
	return userID + "|" + slotID + "|" + date.Format(domain.DateFormat)
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := bookingKey(b.UserID, b.TimeSlotID, b.BookingDate)
	if r.confirmed[key] {
		return nil, bookingRepo.ErrDuplicateBooking
	}
	r.confirmed[key] = true

	r.seq++
	created := *b
	created.ID = fmt.Sprintf("booking-%d", r.seq)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) HasConfirmed(_ context.Context, userID, slotID string, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.confirmed[bookingKey(userID, slotID, date)], nil
}

func (r *fakeBookingRepo) CountConfirmed(_ context.Context, slotID string, date time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, b := range r.bookings {
		if b.TimeSlotID == slotID && b.Status == domain.StatusConfirmed &&
			b.BookingDate.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
			count++
		}
	}
	return count, nil
}

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

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) DebitCredits(_ context.Context, userID string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return profileRepo.ErrProfileNotFound
	}
	if p.Credits < n {
		return profileRepo.ErrInsufficientCredits
	}
	p.Credits -= n
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *fakeCache) Invalidate(_ context.Context, _ string, _ time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
}

// fakeTxManager serializes transaction bodies with a mutex, standing in
// for the serializable isolation the real manager provides.
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
	slots    *fakeSlotRepo
	profiles *fakeProfileRepo
	cache    *fakeCache
	now      time.Time
}

// newFixture wires the use case against in-memory fakes with a fixed
// clock on Monday 2025-03-10 noon UTC. The default slot is a recurring
// Wednesday class with 10 seats, the default user holds 5 credits.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	slots := &fakeSlotRepo{slots: map[string]*domain.TimeSlot{
		"slot-1": {
			ID:        "slot-1",
			Kind:      domain.SlotRecurring,
			DayOfWeek: 3, // Wednesday
			StartTime: "10:00",
			EndTime:   "11:00",
			Capacity:  10,
			Active:    true,
		},
	}}
	profiles := &fakeProfileRepo{profiles: map[string]*domain.Profile{
		"user-1": {ID: "user-1", Role: domain.RoleClient, Credits: 5},
	}}
	bookings := newFakeBookingRepo()
	cache := &fakeCache{}

	uc := NewUseCase(bookings, slots, profiles, cache, &fakeTxManager{}, time.UTC, &testLogger{})
	uc.timeProvider = &stubClock{now: now}

	return &fixture{uc: uc, bookings: bookings, slots: slots, profiles: profiles, cache: cache, now: now}
}

func wednesday() time.Time {
	return time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     "user-1",
		TimeSlotID: "slot-1",
		Date:       wednesday(),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 4, resp.RemainingCredits)
	assert.Equal(t, 4, f.profiles.profiles["user-1"].Credits)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestCreateBooking_Duplicate(t *testing.T) {
	f := newFixture(t)

	req := &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: wednesday()}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	// Only the first attempt may charge.
	assert.Equal(t, 4, f.profiles.profiles["user-1"].Credits)
}

func TestCreateBooking_SlotFull(t *testing.T) {
	f := newFixture(t)
	f.slots.slots["slot-1"].Capacity = 1
	f.profiles.profiles["other"] = &domain.Profile{ID: "other", Role: domain.RoleClient, Credits: 1}

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "other", TimeSlotID: "slot-1", Date: wednesday()})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: wednesday()})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Equal(t, 5, f.profiles.profiles["user-1"].Credits)
}

func TestCreateBooking_InsufficientCredits(t *testing.T) {
	f := newFixture(t)
	f.profiles.profiles["user-1"].Credits = 0

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: wednesday()})

	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.Equal(t, 0, f.cache.invalidated)
}

func TestCreateBooking_SlotNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "missing", Date: wednesday()})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateBooking_SlotInactive(t *testing.T) {
	f := newFixture(t)
	f.slots.slots["slot-1"].Active = false

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: wednesday()})

	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestCreateBooking_DateMismatch(t *testing.T) {
	f := newFixture(t)

	// Thursday, the slot runs on Wednesdays.
	thursday := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: thursday})

	assert.ErrorIs(t, err, ErrSlotDateMismatch)
}

func TestCreateBooking_SpecificDateSlot(t *testing.T) {
	f := newFixture(t)

	workshop := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	f.slots.slots["slot-2"] = &domain.TimeSlot{
		ID:           "slot-2",
		Kind:         domain.SlotSpecificDate,
		SpecificDate: &workshop,
		StartTime:    "09:00",
		EndTime:      "12:00",
		Capacity:     20,
		Active:       true,
	}

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-2", Date: workshop})
	require.NoError(t, err)

	other := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-2", Date: other})
	assert.ErrorIs(t, err, ErrSlotDateMismatch)
}

func TestCreateBooking_PastDate(t *testing.T) {
	f := newFixture(t)

	// The previous Wednesday, behind the fixed clock.
	past := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: past})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_SameDayAllowed(t *testing.T) {
	f := newFixture(t)

	// The clock reads Monday; a Monday slot today is still bookable.
	f.slots.slots["slot-1"].DayOfWeek = 1
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1", Date: today})

	require.NoError(t, err)
}

func TestCreateBooking_ProfileNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "ghost", TimeSlotID: "slot-1", Date: wednesday()})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{TimeSlotID: "slot-1", Date: wednesday()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-1", Date: wednesday()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-1", TimeSlotID: "slot-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBooking_CreatedByRecorded(t *testing.T) {
	f := newFixture(t)

	staffID := "admin-1"
	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     "user-1",
		TimeSlotID: "slot-1",
		Date:       wednesday(),
		CreatedBy:  &staffID,
	})

	require.NoError(t, err)
	require.Len(t, f.bookings.bookings, 1)
	stored := f.bookings.bookings[0]
	assert.Equal(t, resp.ID, stored.ID)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, staffID, *stored.CreatedBy)
}

func TestCreateBooking_TwoSeatsThreeMembers(t *testing.T) {
	f := newFixture(t)
	f.slots.slots["slot-1"].Capacity = 2
	for _, id := range []string{"user-a", "user-b", "user-c"} {
		f.profiles.profiles[id] = &domain.Profile{ID: id, Role: domain.RoleClient, Credits: 1}
	}

	_, err := f.uc.Execute(context.Background(), &Request{UserID: "user-a", TimeSlotID: "slot-1", Date: wednesday()})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-b", TimeSlotID: "slot-1", Date: wednesday()})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: "user-c", TimeSlotID: "slot-1", Date: wednesday()})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Equal(t, 1, f.profiles.profiles["user-c"].Credits)
}

func TestCreateBooking_ConcurrentLastSeat(t *testing.T) {
	f := newFixture(t)
	f.slots.slots["slot-1"].Capacity = 1

	const workers = 20
	for i := 0; i < workers; i++ {
		id := fmt.Sprintf("user-%d", i)
		f.profiles.profiles[id] = &domain.Profile{ID: id, Role: domain.RoleClient, Credits: 1}
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), &Request{
				UserID:     fmt.Sprintf("user-%d", i),
				TimeSlotID: "slot-1",
				Date:       wednesday(),
			})
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrSlotFull)
		}
	}
	assert.Equal(t, 1, won)

	// Only the winner paid.
	charged := 0
	for i := 0; i < workers; i++ {
		if f.profiles.profiles[fmt.Sprintf("user-%d", i)].Credits == 0 {
			charged++
		}
	}
	assert.Equal(t, 1, charged)
}
