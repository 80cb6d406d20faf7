package resource

import (
	"context"

	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain"
)

// Repository defines the interface for Resource persistence.
type Repository interface {
	domain.CatalogRepository[*Resource]

	// FindByName retrieves resource by name (unique).
	FindByName(ctx context.Context, name string) (*Resource, error)

	// GetForUpdate retrieves resource with a row lock.
	// Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id id.ID) (*Resource, error)

	// ApplyQuantityDelta applies a relative quantity update
	// (quantity = quantity + delta) without rewriting the whole row.
	ApplyQuantityDelta(ctx context.Context, id id.ID, delta types.Quantity) error
}
