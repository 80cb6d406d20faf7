package visitstatus

import (
	"context"

	"dentman/internal/domain"
)

// Repository defines the interface for VisitStatus persistence.
type Repository interface {
	domain.CatalogRepository[*VisitStatus]

	// FindByName retrieves status by name (unique).
	FindByName(ctx context.Context, name string) (*VisitStatus, error)
}
