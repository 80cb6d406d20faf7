// Package ledger_repo provides the PostgreSQL implementation of the
// resource movement register.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain"
	"dentman/internal/domain/ledger"
	"dentman/internal/infrastructure/storage/postgres"
)

const resourceUpdateTable = "doc_resource_updates"

// Compile-time check that ResourceUpdateRepo implements ledger.Repository.
var _ ledger.Repository = (*ResourceUpdateRepo)(nil)

// ResourceUpdateRepo persists resource movements. The register is
// append-only: rows are never updated or deleted.
type ResourceUpdateRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewResourceUpdateRepo creates a new resource update repository.
func NewResourceUpdateRepo(txManager *postgres.TxManager) *ResourceUpdateRepo {
	return &ResourceUpdateRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[ledger.ResourceUpdate](),
	}
}

func (r *ResourceUpdateRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new movement row.
func (r *ResourceUpdateRepo) Create(ctx context.Context, update *ledger.ResourceUpdate) error {
	data := postgres.StructToMap(update)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(resourceUpdateTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert resource update: %w", err)
	}

	return nil
}

// GetByID retrieves a movement by ID.
func (r *ResourceUpdateRepo) GetByID(ctx context.Context, updateID id.ID) (*ledger.ResourceUpdate, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(resourceUpdateTable).
		Where(squirrel.Eq{"id": updateID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u ledger.ResourceUpdate
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("resource update", updateID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &u, nil
}

// ListByResource retrieves movements of one resource, newest first.
func (r *ResourceUpdateRepo) ListByResource(ctx context.Context, resourceID id.ID, filter domain.ListFilter) (domain.ListResult[*ledger.ResourceUpdate], error) {
	result := domain.ListResult[*ledger.ResourceUpdate]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.builder().
		Select(r.selectCols...).
		From(resourceUpdateTable).
		Where(squirrel.Eq{"resource_id": resourceID.String()})

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
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

	q = q.OrderBy("date DESC", "number DESC")

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
		return result, fmt.Errorf("list by resource: %w", err)
	}

	return result, nil
}
