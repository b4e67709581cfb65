package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/booking-service/internal/domain"
	settingsRepo "github.com/studiofit/booking-service/internal/infra/storage/settings"
	"github.com/studiofit/booking-service/internal/service/settings/models"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

type fakeSettingsRepo struct {
	policy    *domain.CancellationPolicy
	getErr    error
	updatedBy string
}

func (r *fakeSettingsRepo) GetCancellationPolicy(_ context.Context) (*domain.CancellationPolicy, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.policy == nil {
		return nil, settingsRepo.ErrSettingNotFound
	}
	return r.policy, nil
}

func (r *fakeSettingsRepo) UpsertCancellationPolicy(_ context.Context, policy domain.CancellationPolicy, updatedBy string) error {
	r.policy = &policy
	r.updatedBy = updatedBy
	return nil
}

func TestResolvePolicy_Stored(t *testing.T) {
	repo := &fakeSettingsRepo{policy: &domain.CancellationPolicy{Unit: domain.UnitHours, Value: 12}}
	svc := NewService(repo, &testLogger{})

	policy := svc.ResolvePolicy(context.Background())

	assert.Equal(t, domain.UnitHours, policy.Unit)
	assert.Equal(t, 12, policy.Value)
}

func TestResolvePolicy_MissingFallsBackToDefault(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &testLogger{})

	policy := svc.ResolvePolicy(context.Background())

	assert.Equal(t, domain.DefaultCancellationPolicy(), policy)
}

func TestResolvePolicy_StorageErrorFallsBackToDefault(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: errors.New("connection refused")}
	svc := NewService(repo, &testLogger{})

	policy := svc.ResolvePolicy(context.Background())

	assert.Equal(t, domain.DefaultCancellationPolicy(), policy)
}

func TestUpdateCancellationPolicy(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, &testLogger{})

	resp, err := svc.UpdateCancellationPolicy(context.Background(),
		&models.UpdatePolicyRequest{Unit: "days", Value: 2}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "days", resp.Unit)
	assert.Equal(t, 2, resp.Value)
	assert.Equal(t, "admin-1", repo.updatedBy)
	require.NotNil(t, repo.policy)
	assert.Equal(t, domain.UnitDays, repo.policy.Unit)
}

func TestUpdateCancellationPolicy_Invalid(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &testLogger{})

	_, err := svc.UpdateCancellationPolicy(context.Background(),
		&models.UpdatePolicyRequest{Unit: "weeks", Value: 1}, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = svc.UpdateCancellationPolicy(context.Background(),
		&models.UpdatePolicyRequest{Unit: "hours", Value: -5}, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
