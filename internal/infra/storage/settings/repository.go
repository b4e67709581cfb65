package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/dbmetrics"
	"github.com/studiofit/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// policyValue is the fixed on-disk schema of the cancellation policy.
// The store kept it as an open JSON blob historically; it is validated
// into the tagged form at this boundary and nowhere else.
type policyValue struct {
	Unit  string `json:"unit"`
	Value int    `json:"value"`
}

// Repository persists studio-wide settings in the app_settings
// key/value table.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCancellationPolicy reads and validates the global policy row.
func (r *Repository) GetCancellationPolicy(ctx context.Context) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("app_settings").
		Where(squirrel.Eq{"key": domain.SettingKeyCancellationPolicy}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCancellationPolicy - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCancellationPolicy - scan value: %v", ErrScanRow, err)
	}

	var value policyValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: GetCancellationPolicy - decode: %v", ErrInvalidPolicy, err)
	}

	policy := domain.CancellationPolicy{
		Unit:  domain.PolicyUnit(value.Unit),
		Value: value.Value,
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	return &policy, nil
}

// UpsertCancellationPolicy writes the policy row, recording the acting
// staff member. The caller validates the policy before reaching here.
func (r *Repository) UpsertCancellationPolicy(ctx context.Context, policy domain.CancellationPolicy, updatedBy string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(policyValue{
		Unit:  string(policy.Unit),
		Value: policy.Value,
	})
	if err != nil {
		return fmt.Errorf("%w: UpsertCancellationPolicy - encode: %v", ErrInvalidPolicy, err)
	}

	query, args, err := psqlbuilder.Insert("app_settings").
		Columns("key", "value", "updated_by").
		Values(domain.SettingKeyCancellationPolicy, raw, updatedBy).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertCancellationPolicy - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertCancellationPolicy - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
