package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain/catalogs/discount"
	"dentman/internal/infrastructure/storage/postgres"
)

const discountTable = "cat_discounts"

// Compile-time check that DiscountRepo implements discount.Repository.
var _ discount.Repository = (*DiscountRepo)(nil)

// DiscountRepo implements discount.Repository.
type DiscountRepo struct {
	*BaseCatalogRepo[*discount.Discount]
}

// NewDiscountRepo creates a new discount repository.
func NewDiscountRepo(txManager *postgres.TxManager) *DiscountRepo {
	return &DiscountRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			discountTable,
			postgres.ExtractDBColumns[discount.Discount](),
			func() *discount.Discount { return &discount.Discount{} },
		),
	}
}

// FindByName retrieves discount by name.
func (r *DiscountRepo) FindByName(ctx context.Context, name string) (*discount.Discount, error) {
	return r.findOneBy(ctx, squirrel.Eq{"name": name}, name)
}

// FindByPromotionCode retrieves a promo-code discount by its code.
func (r *DiscountRepo) FindByPromotionCode(ctx context.Context, code string) (*discount.Discount, error) {
	return r.findOneBy(ctx, squirrel.Eq{"promotion_code": code}, code)
}

func (r *DiscountRepo) findOneBy(ctx context.Context, cond squirrel.Eq, key string) (*discount.Discount, error) {
	q := r.baseSelect().
		Where(cond).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var d discount.Discount
	if err := pgxscan.Get(ctx, r.Querier(ctx), &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("discount", key)
		}
		return nil, fmt.Errorf("find discount: %w", err)
	}

	return &d, nil
}

// GetManyByIDs retrieves discounts for the given ids, preserving input order.
func (r *DiscountRepo) GetManyByIDs(ctx context.Context, ids []id.ID) ([]*discount.Discount, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*discount.Discount
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get many by ids: %w", err)
	}

	// Reorder to match the requested ids
	byID := make(map[id.ID]*discount.Discount, len(items))
	for _, d := range items {
		byID[d.ID] = d
	}

	ordered := make([]*discount.Discount, 0, len(ids))
	for _, discountID := range ids {
		d, ok := byID[discountID]
		if !ok {
			return nil, apperror.NewNotFound("discount", discountID.String())
		}
		ordered = append(ordered, d)
	}

	return ordered, nil
}

// ApplyUsedCounterDelta applies an atomic relative update to the usage counter.
func (r *DiscountRepo) ApplyUsedCounterDelta(ctx context.Context, discountID id.ID, delta int) error {
	q := r.Builder().
		Update(discountTable).
		Set("used_counter", squirrel.Expr("used_counter + ?", delta)).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": discountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("apply used counter delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("discount", discountID.String())
	}

	return nil
}
