package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain/catalogs/resource"
	"dentman/internal/infrastructure/storage/postgres"
)

const resourceTable = "cat_resources"

// Compile-time check that ResourceRepo implements resource.Repository.
var _ resource.Repository = (*ResourceRepo)(nil)

// ResourceRepo implements resource.Repository.
type ResourceRepo struct {
	*BaseCatalogRepo[*resource.Resource]
}

// NewResourceRepo creates a new resource repository.
func NewResourceRepo(txManager *postgres.TxManager) *ResourceRepo {
	return &ResourceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			resourceTable,
			postgres.ExtractDBColumns[resource.Resource](),
			func() *resource.Resource { return &resource.Resource{} },
		),
	}
}

// FindByName retrieves resource by name.
func (r *ResourceRepo) FindByName(ctx context.Context, name string) (*resource.Resource, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var res resource.Resource
	if err := pgxscan.Get(ctx, r.Querier(ctx), &res, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("resource", name)
		}
		return nil, fmt.Errorf("find by name: %w", err)
	}

	return &res, nil
}

// ApplyQuantityDelta applies a relative quantity update.
// Quantity is stored as a scaled bigint so the addition is exact.
func (r *ResourceRepo) ApplyQuantityDelta(ctx context.Context, resourceID id.ID, delta types.Quantity) error {
	q := r.Builder().
		Update(resourceTable).
		Set("quantity", squirrel.Expr("quantity + ?", delta.Int64Scaled())).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": resourceID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("apply quantity delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("resource", resourceID.String())
	}

	return nil
}
