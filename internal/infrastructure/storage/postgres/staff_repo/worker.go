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
	workerTable          = "staff_workers"
	dentistStaffTable    = "staff_dentists"
	managementStaffTable = "staff_management"
)

// Compile-time checks.
var (
	_ staff.WorkerRepository          = (*WorkerRepo)(nil)
	_ staff.DentistStaffRepository    = (*DentistStaffRepo)(nil)
	_ staff.ManagementStaffRepository = (*ManagementStaffRepo)(nil)
)

// WorkerRepo implements staff.WorkerRepository.
type WorkerRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewWorkerRepo creates a new worker repository.
func NewWorkerRepo(txManager *postgres.TxManager) *WorkerRepo {
	return &WorkerRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[staff.Worker](),
	}
}

// Create inserts a new worker.
func (r *WorkerRepo) Create(ctx context.Context, w *staff.Worker) error {
	return insertRow(ctx, r.txManager, workerTable, r.selectCols, w)
}

// GetByID retrieves worker by ID.
func (r *WorkerRepo) GetByID(ctx context.Context, workerID id.ID) (*staff.Worker, error) {
	q := builder().
		Select(r.selectCols...).
		From(workerTable).
		Where(squirrel.Eq{"id": workerID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var w staff.Worker
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &w, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("worker", workerID.String())
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}

	return &w, nil
}

// GetByUserID retrieves worker by user ID.
func (r *WorkerRepo) GetByUserID(ctx context.Context, userID string) (*staff.Worker, error) {
	q := builder().
		Select(r.selectCols...).
		From(workerTable).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var w staff.Worker
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &w, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("worker", userID)
		}
		return nil, fmt.Errorf("get worker by user: %w", err)
	}

	return &w, nil
}

// Update modifies an existing worker with optimistic locking.
func (r *WorkerRepo) Update(ctx context.Context, w *staff.Worker) error {
	return updateRow(ctx, r.txManager, workerTable, r.selectCols, w)
}

// List returns workers, optionally only active ones.
func (r *WorkerRepo) List(ctx context.Context, activeOnly bool) ([]*staff.Worker, error) {
	q := builder().
		Select(r.selectCols...).
		From(workerTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("since_when")

	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var workers []*staff.Worker
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &workers, sql, args...); err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	return workers, nil
}

// DentistStaffRepo implements staff.DentistStaffRepository.
type DentistStaffRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewDentistStaffRepo creates a new dentist staff repository.
func NewDentistStaffRepo(txManager *postgres.TxManager) *DentistStaffRepo {
	return &DentistStaffRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[staff.DentistStaff](),
	}
}

// Create inserts a new dentist staff record.
func (r *DentistStaffRepo) Create(ctx context.Context, d *staff.DentistStaff) error {
	return insertRow(ctx, r.txManager, dentistStaffTable, r.selectCols, d)
}

// GetByWorkerID retrieves the record by worker ID.
func (r *DentistStaffRepo) GetByWorkerID(ctx context.Context, workerID string) (*staff.DentistStaff, error) {
	q := builder().
		Select(r.selectCols...).
		From(dentistStaffTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var d staff.DentistStaff
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("dentist staff", workerID)
		}
		return nil, fmt.Errorf("get dentist staff: %w", err)
	}

	return &d, nil
}

// Update modifies an existing record.
func (r *DentistStaffRepo) Update(ctx context.Context, d *staff.DentistStaff) error {
	return updateRow(ctx, r.txManager, dentistStaffTable, r.selectCols, d)
}

// ManagementStaffRepo implements staff.ManagementStaffRepository.
type ManagementStaffRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewManagementStaffRepo creates a new management staff repository.
func NewManagementStaffRepo(txManager *postgres.TxManager) *ManagementStaffRepo {
	return &ManagementStaffRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[staff.ManagementStaff](),
	}
}

// Create inserts a new management staff record.
func (r *ManagementStaffRepo) Create(ctx context.Context, m *staff.ManagementStaff) error {
	return insertRow(ctx, r.txManager, managementStaffTable, r.selectCols, m)
}

// GetByID retrieves the record by ID.
func (r *ManagementStaffRepo) GetByID(ctx context.Context, staffID id.ID) (*staff.ManagementStaff, error) {
	q := builder().
		Select(r.selectCols...).
		From(managementStaffTable).
		Where(squirrel.Eq{"id": staffID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m staff.ManagementStaff
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("management staff", staffID.String())
		}
		return nil, fmt.Errorf("get management staff: %w", err)
	}

	return &m, nil
}

// GetByWorkerID retrieves the record by worker ID.
func (r *ManagementStaffRepo) GetByWorkerID(ctx context.Context, workerID string) (*staff.ManagementStaff, error) {
	q := builder().
		Select(r.selectCols...).
		From(managementStaffTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m staff.ManagementStaff
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("management staff", workerID)
		}
		return nil, fmt.Errorf("get management staff: %w", err)
	}

	return &m, nil
}

// Update modifies an existing record.
func (r *ManagementStaffRepo) Update(ctx context.Context, m *staff.ManagementStaff) error {
	return updateRow(ctx, r.txManager, managementStaffTable, r.selectCols, m)
}
