package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/domain/catalogs/dentalservice"
	"dentman/internal/infrastructure/storage/postgres"
)

const dentalServiceTable = "cat_dental_services"

// Compile-time check that DentalServiceRepo implements dentalservice.Repository.
var _ dentalservice.Repository = (*DentalServiceRepo)(nil)

// DentalServiceRepo implements dentalservice.Repository.
type DentalServiceRepo struct {
	*BaseCatalogRepo[*dentalservice.DentalService]
}

// NewDentalServiceRepo creates a new dental service repository.
func NewDentalServiceRepo(txManager *postgres.TxManager) *DentalServiceRepo {
	return &DentalServiceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			dentalServiceTable,
			postgres.ExtractDBColumns[dentalservice.DentalService](),
			func() *dentalservice.DentalService { return &dentalservice.DentalService{} },
		),
	}
}

// FindByName retrieves service by name.
func (r *DentalServiceRepo) FindByName(ctx context.Context, name string) (*dentalservice.DentalService, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var svc dentalservice.DentalService
	if err := pgxscan.Get(ctx, r.Querier(ctx), &svc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("dental service", name)
		}
		return nil, fmt.Errorf("find by name: %w", err)
	}

	return &svc, nil
}
