package ledger

import (
	"context"

	"dentman/internal/core/id"
	"dentman/internal/domain"
)

// Repository defines the interface for ResourceUpdate persistence.
// The register is append-only: there is no Update or Delete.
type Repository interface {
	// Create inserts a new movement row.
	Create(ctx context.Context, update *ResourceUpdate) error

	// GetByID retrieves a movement by ID.
	GetByID(ctx context.Context, id id.ID) (*ResourceUpdate, error)

	// ListByResource retrieves movements of one resource, newest first.
	ListByResource(ctx context.Context, resourceID id.ID, filter domain.ListFilter) (domain.ListResult[*ResourceUpdate], error)
}
