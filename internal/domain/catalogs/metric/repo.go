package metric

import (
	"context"

	"dentman/internal/domain"
)

// Repository defines the interface for Metric persistence.
type Repository interface {
	domain.CatalogRepository[*Metric]

	// FindBySymbol retrieves metric by symbol (unique).
	FindBySymbol(ctx context.Context, symbol string) (*Metric, error)
}
