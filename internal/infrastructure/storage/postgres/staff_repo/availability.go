package staff_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/id"
	"dentman/internal/domain/staff"
	"dentman/internal/infrastructure/storage/postgres"
)

const (
	weeklyAvailabilityTable  = "staff_availability"
	specialAvailabilityTable = "staff_special_availability"
	inaccessibilityTable     = "staff_inaccessibility"
)

// Compile-time check.
var _ staff.AvailabilityRepository = (*AvailabilityRepo)(nil)

// AvailabilityRepo implements staff.AvailabilityRepository.
type AvailabilityRepo struct {
	txManager   *postgres.TxManager
	weeklyCols  []string
	specialCols []string
	inaccCols   []string
}

// NewAvailabilityRepo creates a new availability repository.
func NewAvailabilityRepo(txManager *postgres.TxManager) *AvailabilityRepo {
	return &AvailabilityRepo{
		txManager:   txManager,
		weeklyCols:  postgres.ExtractDBColumns[staff.Availability](),
		specialCols: postgres.ExtractDBColumns[staff.SpecialAvailability](),
		inaccCols:   postgres.ExtractDBColumns[staff.Inaccessibility](),
	}
}

// CreateWeekly inserts a recurring availability window.
func (r *AvailabilityRepo) CreateWeekly(ctx context.Context, a *staff.Availability) error {
	return insertRow(ctx, r.txManager, weeklyAvailabilityTable, r.weeklyCols, a)
}

// ListWeeklyByWorker returns a worker's recurring windows ordered by weekday.
func (r *AvailabilityRepo) ListWeeklyByWorker(ctx context.Context, workerID string) ([]*staff.Availability, error) {
	q := builder().
		Select(r.weeklyCols...).
		From(weeklyAvailabilityTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		OrderBy("weekday", "since")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*staff.Availability
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list weekly availability: %w", err)
	}

	return items, nil
}

// DeleteWeekly removes a recurring window.
func (r *AvailabilityRepo) DeleteWeekly(ctx context.Context, entryID id.ID) error {
	return deleteRow(ctx, r.txManager, weeklyAvailabilityTable, entryID)
}

// CreateSpecial inserts a one-off availability window.
func (r *AvailabilityRepo) CreateSpecial(ctx context.Context, s *staff.SpecialAvailability) error {
	return insertRow(ctx, r.txManager, specialAvailabilityTable, r.specialCols, s)
}

// ListSpecialByWorker returns one-off windows in the date range.
func (r *AvailabilityRepo) ListSpecialByWorker(ctx context.Context, workerID string, from, to time.Time) ([]*staff.SpecialAvailability, error) {
	q := builder().
		Select(r.specialCols...).
		From(specialAvailabilityTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date", "since")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*staff.SpecialAvailability
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list special availability: %w", err)
	}

	return items, nil
}

// DeleteSpecial removes a one-off window.
func (r *AvailabilityRepo) DeleteSpecial(ctx context.Context, entryID id.ID) error {
	return deleteRow(ctx, r.txManager, specialAvailabilityTable, entryID)
}

// CreateInaccessibility inserts an inaccessibility record.
func (r *AvailabilityRepo) CreateInaccessibility(ctx context.Context, i *staff.Inaccessibility) error {
	return insertRow(ctx, r.txManager, inaccessibilityTable, r.inaccCols, i)
}

// ListInaccessibilityByWorker returns inaccessibility records in the date range.
func (r *AvailabilityRepo) ListInaccessibilityByWorker(ctx context.Context, workerID string, from, to time.Time) ([]*staff.Inaccessibility, error) {
	q := builder().
		Select(r.inaccCols...).
		From(inaccessibilityTable).
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*staff.Inaccessibility
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list inaccessibility: %w", err)
	}

	return items, nil
}

// DeleteInaccessibility removes an inaccessibility record.
func (r *AvailabilityRepo) DeleteInaccessibility(ctx context.Context, entryID id.ID) error {
	return deleteRow(ctx, r.txManager, inaccessibilityTable, entryID)
}
