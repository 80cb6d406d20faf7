package staff_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain/staff"
	"dentman/internal/infrastructure/storage/postgres"
)

const (
	employmentTable = "staff_employments"
	bonusTable      = "staff_bonuses"
)

// Compile-time check.
var _ staff.EmploymentRepository = (*EmploymentRepo)(nil)

// EmploymentRepo implements staff.EmploymentRepository.
type EmploymentRepo struct {
	txManager      *postgres.TxManager
	employmentCols []string
	bonusCols      []string
}

// NewEmploymentRepo creates a new employment repository.
func NewEmploymentRepo(txManager *postgres.TxManager) *EmploymentRepo {
	return &EmploymentRepo{
		txManager:      txManager,
		employmentCols: postgres.ExtractDBColumns[staff.Employment](),
		bonusCols:      postgres.ExtractDBColumns[staff.Bonus](),
	}
}

// Create inserts a new employment record.
func (r *EmploymentRepo) Create(ctx context.Context, e *staff.Employment) error {
	return insertRow(ctx, r.txManager, employmentTable, r.employmentCols, e)
}

// GetByID retrieves employment by ID.
func (r *EmploymentRepo) GetByID(ctx context.Context, employmentID id.ID) (*staff.Employment, error) {
	q := builder().
		Select(r.employmentCols...).
		From(employmentTable).
		Where(squirrel.Eq{"id": employmentID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var e staff.Employment
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("employment", employmentID.String())
		}
		return nil, fmt.Errorf("get employment: %w", err)
	}

	return &e, nil
}

// ListByWorker returns a worker's contracts, newest first.
func (r *EmploymentRepo) ListByWorker(ctx context.Context, workerID string) ([]*staff.Employment, error) {
	q := builder().
		Select(r.employmentCols...).
		From(employmentTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		OrderBy("since_when DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*staff.Employment
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list employments: %w", err)
	}

	return items, nil
}

// Update modifies an existing employment record.
func (r *EmploymentRepo) Update(ctx context.Context, e *staff.Employment) error {
	return updateRow(ctx, r.txManager, employmentTable, r.employmentCols, e)
}

// CreateBonus inserts a bonus record.
func (r *EmploymentRepo) CreateBonus(ctx context.Context, b *staff.Bonus) error {
	return insertRow(ctx, r.txManager, bonusTable, r.bonusCols, b)
}

// ListBonusesByWorker returns a worker's bonuses, newest first.
func (r *EmploymentRepo) ListBonusesByWorker(ctx context.Context, workerID string) ([]*staff.Bonus, error) {
	q := builder().
		Select(r.bonusCols...).
		From(bonusTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		OrderBy("date DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*staff.Bonus
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list bonuses: %w", err)
	}

	return items, nil
}
