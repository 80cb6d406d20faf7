package dentalservice

import (
	"context"

	"dentman/internal/domain"
)

// Repository defines the interface for DentalService persistence.
type Repository interface {
	domain.CatalogRepository[*DentalService]

	// FindByName retrieves service by name (unique).
	FindByName(ctx context.Context, name string) (*DentalService, error)
}
