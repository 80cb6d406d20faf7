// Package visit_repo provides the PostgreSQL implementation of visit
// persistence, including the visit-discount and visit-dentist link tables.
package visit_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain"
	"dentman/internal/domain/visits"
	"dentman/internal/infrastructure/storage/postgres"
)

const (
	visitTable         = "doc_visits"
	visitDiscountTable = "visit_discounts"
	visitDentistTable  = "visit_dentists"
)

// Compile-time check that VisitRepo implements visits.Repository.
var _ visits.Repository = (*VisitRepo)(nil)

// VisitRepo implements visits.Repository.
type VisitRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewVisitRepo creates a new visit repository.
func NewVisitRepo(txManager *postgres.TxManager) *VisitRepo {
	return &VisitRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[visits.Visit](),
	}
}

func (r *VisitRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *VisitRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(visitTable)
}

// Create inserts a new visit with its dentist links.
func (r *VisitRepo) Create(ctx context.Context, visit *visits.Visit) error {
	data := postgres.StructToMap(visit)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(visitTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}

	if len(visit.DentistIDs) > 0 {
		if err := r.SetDentists(ctx, visit.ID, visit.DentistIDs); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a visit with its association ids loaded.
func (r *VisitRepo) GetByID(ctx context.Context, visitID id.ID) (*visits.Visit, error) {
	return r.get(ctx, visitID, false)
}

// GetForUpdate retrieves a visit with a row lock.
func (r *VisitRepo) GetForUpdate(ctx context.Context, visitID id.ID) (*visits.Visit, error) {
	return r.get(ctx, visitID, true)
}

func (r *VisitRepo) get(ctx context.Context, visitID id.ID, forUpdate bool) (*visits.Visit, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": visitID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	} else {
		q = q.Limit(1)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var v visits.Visit
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &v, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("visit", visitID.String())
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}

	if err := r.loadLinks(ctx, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *VisitRepo) loadLinks(ctx context.Context, v *visits.Visit) error {
	discountIDs, err := r.ListDiscountIDs(ctx, v.ID)
	if err != nil {
		return err
	}
	v.DiscountIDs = discountIDs

	dentistIDs, err := r.listLinkIDs(ctx, visitDentistTable, "dentist_staff_id", v.ID)
	if err != nil {
		return err
	}
	v.DentistIDs = dentistIDs

	return nil
}

// Update modifies a visit with optimistic locking.
func (r *VisitRepo) Update(ctx context.Context, visit *visits.Visit) error {
	data := postgres.StructToMap(visit)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("visit has no 'version' field or it is not an int")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "version" {
			continue
		}
		if col == "eid" {
			continue // external identifier never changes after creation
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Update(visitTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": visit.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("visit", visit.ID)
	}

	return nil
}

// SetDeletionMark sets or clears the deletion mark.
func (r *VisitRepo) SetDeletionMark(ctx context.Context, visitID id.ID, marked bool) error {
	q := r.builder().
		Update(visitTable).
		Set("deletion_mark", marked).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": visitID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set deletion mark: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute set deletion mark: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("visit", visitID.String())
	}

	return nil
}

// List retrieves visits with filtering and pagination.
func (r *VisitRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*visits.Visit], error) {
	result := domain.ListResult[*visits.Visit]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"visit_description": pattern},
		})
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	countQ := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("scheduled_from DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list visits: %w", err)
	}

	return result, nil
}

// SetDentists replaces the visit's dentist links.
func (r *VisitRepo) SetDentists(ctx context.Context, visitID id.ID, dentistIDs []id.ID) error {
	querier := r.txManager.GetQuerier(ctx)

	delQ := r.builder().
		Delete(visitDentistTable).
		Where(squirrel.Eq{"visit_id": visitID})

	sql, args, err := delQ.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear dentist links: %w", err)
	}

	if len(dentistIDs) == 0 {
		return nil
	}

	insQ := r.builder().
		Insert(visitDentistTable).
		Columns("visit_id", "dentist_staff_id")
	for _, dentistID := range dentistIDs {
		insQ = insQ.Values(visitID, dentistID)
	}

	sql, args, err = insQ.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert dentist links: %w", err)
	}

	return nil
}

// AddDiscountLink inserts one visit-discount link.
func (r *VisitRepo) AddDiscountLink(ctx context.Context, visitID, discountID id.ID) error {
	q := r.builder().
		Insert(visitDiscountTable).
		Columns("visit_id", "discount_id").
		Values(visitID, discountID).
		Suffix("ON CONFLICT DO NOTHING")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("add discount link: %w", err)
	}

	return nil
}

// RemoveDiscountLink removes one link; reports whether it existed.
func (r *VisitRepo) RemoveDiscountLink(ctx context.Context, visitID, discountID id.ID) (bool, error) {
	q := r.builder().
		Delete(visitDiscountTable).
		Where(squirrel.Eq{"visit_id": visitID}).
		Where(squirrel.Eq{"discount_id": discountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("remove discount link: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ClearDiscountLinks removes all links and returns the removed ids.
func (r *VisitRepo) ClearDiscountLinks(ctx context.Context, visitID id.ID) ([]id.ID, error) {
	sql := fmt.Sprintf("DELETE FROM %s WHERE visit_id = $1 RETURNING discount_id", visitDiscountTable)

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, visitID)
	if err != nil {
		return nil, fmt.Errorf("clear discount links: %w", err)
	}
	defer rows.Close()

	var removed []id.ID
	for rows.Next() {
		var discountID id.ID
		if err := rows.Scan(&discountID); err != nil {
			return nil, fmt.Errorf("scan discount id: %w", err)
		}
		removed = append(removed, discountID)
	}

	return removed, rows.Err()
}

// ListDiscountIDs returns ids of discounts associated with the visit.
func (r *VisitRepo) ListDiscountIDs(ctx context.Context, visitID id.ID) ([]id.ID, error) {
	return r.listLinkIDs(ctx, visitDiscountTable, "discount_id", visitID)
}

func (r *VisitRepo) listLinkIDs(ctx context.Context, table, column string, visitID id.ID) ([]id.ID, error) {
	q := r.builder().
		Select(column).
		From(table).
		Where(squirrel.Eq{"visit_id": visitID}).
		OrderBy(column)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var ids []id.ID
	for rows.Next() {
		var linkID id.ID
		if err := rows.Scan(&linkID); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, linkID)
	}

	return ids, rows.Err()
}

// UpdateFinalPrice persists a recomputed final price.
func (r *VisitRepo) UpdateFinalPrice(ctx context.Context, visitID id.ID, finalPrice types.Money) error {
	q := r.builder().
		Update(visitTable).
		Set("final_price", finalPrice).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": visitID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update final price: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("visit", visitID.String())
	}

	return nil
}
