package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/dbmetrics"
	"github.com/studiofit/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var profileColumns = []string{
	"id",
	"email",
	"full_name",
	"phone",
	"role",
	"credits",
	"created_at",
	"updated_at",
}

// Repository persists member profiles and their credit balances.
//
// Credit mutations are single conditional UPDATE statements, never a
// read-modify-write pair, so two concurrent debits on the same user
// cannot both pass a balance check against a stale read.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a profile. Inside a transaction the row is locked.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Phone,
		&p.Role,
		&p.Credits,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// DebitCredits atomically subtracts n credits, refusing to go below
// zero. Returns ErrInsufficientCredits when the balance cannot cover n.
func (r *Repository) DebitCredits(ctx context.Context, userID string, n int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("credits", squirrel.Expr("credits - ?", n)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		Where(squirrel.GtOrEq{"credits": n}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DebitCredits - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DebitCredits - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DebitCredits - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrInsufficientCredits
		}
		return ErrProfileNotFound
	}

	return nil
}

// AddCredits atomically adds n credits. Refunds and approved purchase
// requests both land here; there is no upper bound on the balance.
func (r *Repository) AddCredits(ctx context.Context, userID string, n int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("credits", squirrel.Expr("credits + ?", n)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddCredits - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddCredits - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddCredits - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// SetCredits overwrites the balance with an absolute non-negative
// value (staff adjustment). Validation of n happens at the service
// boundary; the table's CHECK constraint is the last line of defense.
func (r *Repository) SetCredits(ctx context.Context, userID string, n int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("credits", n).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCredits - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCredits - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCredits - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}
	return true, nil
}
