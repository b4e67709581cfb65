package slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	slotRepo "github.com/studiofit/booking-service/internal/infra/storage/timeslot"
	"github.com/studiofit/booking-service/internal/service/slots/models"
	"github.com/studiofit/booking-service/pkg/ptr"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	seq   int
	slots map[string]*domain.TimeSlot
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	r.seq++
	created := *slot
	created.ID = fmt.Sprintf("slot-%d", r.seq)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.slots[created.ID] = &created
	return &created, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) List(_ context.Context, onlyActive bool) ([]*domain.TimeSlot, error) {
	var out []*domain.TimeSlot
	for _, slot := range r.slots {
		if onlyActive && !slot.Active {
			continue
		}
		copied := *slot
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSlotRepo) UpdateCapacityAndActive(_ context.Context, id string, capacity *int, active *bool) (*domain.TimeSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	if capacity != nil {
		slot.Capacity = *capacity
	}
	if active != nil {
		slot.Active = *active
	}
	copied := *slot
	return &copied, nil
}

func newService() (*Service, *fakeSlotRepo) {
	repo := &fakeSlotRepo{slots: make(map[string]*domain.TimeSlot)}
	return NewService(repo, &testLogger{}), repo
}

func TestCreateSlot_Recurring(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Kind:      "recurring",
		DayOfWeek: ptr.Ptr(3),
		StartTime: "10:00",
		EndTime:   "11:00",
		Capacity:  15,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Active)
	require.NotNil(t, resp.DayOfWeek)
	assert.Equal(t, 3, *resp.DayOfWeek)
	assert.Equal(t, domain.SlotRecurring, repo.slots[resp.ID].Kind)
}

func TestCreateSlot_SpecificDate(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Kind:         "specific_date",
		SpecificDate: ptr.Ptr("2025-03-15"),
		StartTime:    "09:00",
		EndTime:      "12:00",
		Capacity:     20,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.SpecificDate)
	assert.Equal(t, "2025-03-15", *resp.SpecificDate)
	assert.Nil(t, resp.DayOfWeek)
}

func TestCreateSlot_Invalid(t *testing.T) {
	svc, _ := newService()

	cases := []struct {
		name string
		req  *models.CreateSlotRequest
	}{
		{"unknown kind", &models.CreateSlotRequest{Kind: "daily", DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"recurring without day", &models.CreateSlotRequest{Kind: "recurring", StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"recurring with date", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), SpecificDate: ptr.Ptr("2025-03-15"), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"day out of range", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(7), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"specific without date", &models.CreateSlotRequest{Kind: "specific_date", StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"bad date", &models.CreateSlotRequest{Kind: "specific_date", SpecificDate: ptr.Ptr("15/03/2025"), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"start after end", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), StartTime: "11:00", EndTime: "10:00", Capacity: 5}},
		{"start equals end", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "10:00", Capacity: 5}},
		{"bad time", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), StartTime: "25:00", EndTime: "26:00", Capacity: 5}},
		{"zero capacity", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "11:00", Capacity: 0}},
		{"capacity too high", &models.CreateSlotRequest{Kind: "recurring", DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "11:00", Capacity: domain.MaxCapacity + 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListSlots_ActiveFilter(t *testing.T) {
	svc, repo := newService()
	repo.slots["slot-a"] = &domain.TimeSlot{ID: "slot-a", Kind: domain.SlotRecurring, DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00", Capacity: 10, Active: true}
	repo.slots["slot-b"] = &domain.TimeSlot{ID: "slot-b", Kind: domain.SlotRecurring, DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00", Capacity: 10, Active: false}

	resp, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "slot-a", resp.Slots[0].ID)

	resp, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestUpdateSlot(t *testing.T) {
	svc, repo := newService()
	repo.slots["slot-a"] = &domain.TimeSlot{ID: "slot-a", Kind: domain.SlotRecurring, DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00", Capacity: 10, Active: true}

	resp, err := svc.Update(context.Background(), "slot-a", &models.UpdateSlotRequest{
		Capacity: ptr.Ptr(12),
		Active:   ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, 12, resp.Capacity)
	assert.False(t, resp.Active)
}

func TestUpdateSlot_EmptyUpdate(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), "slot-a", &models.UpdateSlotRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSlot_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), "missing", &models.UpdateSlotRequest{Capacity: ptr.Ptr(5)})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetSlot(t *testing.T) {
	svc, repo := newService()
	repo.slots["slot-a"] = &domain.TimeSlot{ID: "slot-a", Kind: domain.SlotRecurring, DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00", Capacity: 10, Active: false}

	resp, err := svc.GetByID(context.Background(), "slot-a")
	require.NoError(t, err)
	assert.Equal(t, "slot-a", resp.ID)
	assert.False(t, resp.Active)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
