package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/domain/catalogs/metric"
	"dentman/internal/infrastructure/storage/postgres"
)

const metricTable = "cat_metrics"

// Compile-time check that MetricRepo implements metric.Repository.
var _ metric.Repository = (*MetricRepo)(nil)

// MetricRepo implements metric.Repository.
type MetricRepo struct {
	*BaseCatalogRepo[*metric.Metric]
}

// NewMetricRepo creates a new metric repository.
func NewMetricRepo(txManager *postgres.TxManager) *MetricRepo {
	return &MetricRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			metricTable,
			postgres.ExtractDBColumns[metric.Metric](),
			func() *metric.Metric { return &metric.Metric{} },
		),
	}
}

// FindBySymbol retrieves metric by symbol.
func (r *MetricRepo) FindBySymbol(ctx context.Context, symbol string) (*metric.Metric, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"symbol": symbol}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m metric.Metric
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("metric", symbol)
		}
		return nil, fmt.Errorf("find by symbol: %w", err)
	}

	return &m, nil
}
