package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/domain/catalogs/visitstatus"
	"dentman/internal/infrastructure/storage/postgres"
)

const visitStatusTable = "cat_visit_statuses"

// Compile-time check that VisitStatusRepo implements visitstatus.Repository.
var _ visitstatus.Repository = (*VisitStatusRepo)(nil)

// VisitStatusRepo implements visitstatus.Repository.
type VisitStatusRepo struct {
	*BaseCatalogRepo[*visitstatus.VisitStatus]
}

// NewVisitStatusRepo creates a new visit status repository.
func NewVisitStatusRepo(txManager *postgres.TxManager) *VisitStatusRepo {
	return &VisitStatusRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			visitStatusTable,
			postgres.ExtractDBColumns[visitstatus.VisitStatus](),
			func() *visitstatus.VisitStatus { return &visitstatus.VisitStatus{} },
		),
	}
}

// FindByName retrieves status by name.
func (r *VisitStatusRepo) FindByName(ctx context.Context, name string) (*visitstatus.VisitStatus, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var vs visitstatus.VisitStatus
	if err := pgxscan.Get(ctx, r.Querier(ctx), &vs, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("visit status", name)
		}
		return nil, fmt.Errorf("find by name: %w", err)
	}

	return &vs, nil
}
