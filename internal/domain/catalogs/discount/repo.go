package discount

import (
	"context"

	"dentman/internal/core/id"
	"dentman/internal/domain"
)

// Repository defines the interface for Discount persistence.
type Repository interface {
	domain.CatalogRepository[*Discount]

	// FindByName retrieves discount by name (unique).
	FindByName(ctx context.Context, name string) (*Discount, error)

	// FindByPromotionCode retrieves a promo-code discount by its code.
	FindByPromotionCode(ctx context.Context, code string) (*Discount, error)

	// GetManyByIDs retrieves discounts for the given ids, preserving order.
	GetManyByIDs(ctx context.Context, ids []id.ID) ([]*Discount, error)

	// ApplyUsedCounterDelta applies an atomic relative update
	// (used_counter = used_counter + delta) without rewriting the row.
	ApplyUsedCounterDelta(ctx context.Context, id id.ID, delta int) error
}
