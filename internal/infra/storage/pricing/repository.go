package pricing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/dbmetrics"
	"github.com/studiofit/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var packageColumns = []string{
	"id",
	"name",
	"credits",
	"price",
	"display_order",
	"active",
	"created_at",
	"updated_at",
}

// Repository persists the catalogue of purchasable credit packages.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, pkg *domain.PricingPackage) (*domain.PricingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("pricing_packages").
		Columns("id", "name", "credits", "price", "display_order", "active").
		Values(id, pkg.Name, pkg.Credits, pkg.Price, pkg.DisplayOrder, pkg.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *pkg
	created.ID = id

	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PricingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("pricing_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return pkg, nil
}

// List returns packages in display order. With onlyActive set, retired
// packages are filtered out.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.PricingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(packageColumns...).
		From("pricing_packages").
		OrderBy("display_order ASC", "created_at ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var packages []*domain.PricingPackage
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return packages, nil
}

// SetActive retires or revives a package. Retired packages stay in the
// table because payment requests reference them.
func (r *Repository) SetActive(ctx context.Context, id string, active bool) (*domain.PricingPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_packages").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(packageColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - scan row: %v", ErrScanRow, err)
	}

	return pkg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row rowScanner) (*domain.PricingPackage, error) {
	var pkg domain.PricingPackage
	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Credits,
		&pkg.Price,
		&pkg.DisplayOrder,
		&pkg.Active,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
