package category

import (
	"context"

	"dentman/internal/domain"
)

// Repository defines the interface for Category persistence.
type Repository interface {
	domain.CatalogRepository[*Category]

	// FindByName retrieves category by name (unique).
	FindByName(ctx context.Context, name string) (*Category, error)
}
