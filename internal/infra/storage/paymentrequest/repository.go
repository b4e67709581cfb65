package paymentrequest

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

var requestColumns = []string{
	"id",
	"user_id",
	"credits_requested",
	"pricing_package_id",
	"status",
	"admin_notes",
	"processed_by",
	"processed_at",
	"created_at",
	"updated_at",
}

// Repository persists credit top-up requests.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending request and returns it with generated fields.
func (r *Repository) Create(ctx context.Context, request *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("payment_requests").
		Columns("id", "user_id", "credits_requested", "pricing_package_id", "status").
		Values(id, request.UserID, request.CreditsRequested, request.PricingPackageID, domain.PaymentStatusPending).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *request
	created.ID = id
	created.Status = domain.PaymentStatusPending

	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(requestColumns...).
		From("payment_requests").
		Where(squirrel.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	if dbmetrics.IsInTransaction(ctx) {
		query += " FOR UPDATE"
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return request, nil
}

// List returns requests newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status *domain.PaymentRequestStatus) ([]*domain.PaymentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(requestColumns...).
		From("payment_requests").
		OrderBy("created_at DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
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

	var requests []*domain.PaymentRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return requests, nil
}

// MarkProcessed moves a pending request to a terminal status. A request
// that already left pending is reported as ErrAlreadyProcessed so a
// second reviewer cannot grant credits twice.
func (r *Repository) MarkProcessed(ctx context.Context, id string, status domain.PaymentRequestStatus, processedBy string, notes *string) (*domain.PaymentRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_requests").
		Set("status", status).
		Set("processed_by", processedBy).
		Set("processed_at", squirrel.Expr("NOW()")).
		Set("admin_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.PaymentStatusPending}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		exists, existsErr := r.exists(ctx, executor, id)
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, ErrAlreadyProcessed
		}
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkProcessed - scan row: %v", ErrScanRow, err)
	}

	return request, nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("payment_requests").
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
		return false, fmt.Errorf("%w: exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.PaymentRequest, error) {
	var request domain.PaymentRequest
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.CreditsRequested,
		&request.PricingPackageID,
		&request.Status,
		&request.AdminNotes,
		&request.ProcessedBy,
		&request.ProcessedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
