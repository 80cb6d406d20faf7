package visits

import (
	"context"

	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain"
)

// Repository defines the interface for Visit persistence, including the
// visit-discount and visit-dentist association tables.
type Repository interface {
	// Create inserts a new visit with its dentist links.
	Create(ctx context.Context, visit *Visit) error

	// GetByID retrieves a visit with its association ids loaded.
	GetByID(ctx context.Context, id id.ID) (*Visit, error)

	// GetForUpdate retrieves a visit with a row lock.
	// Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id id.ID) (*Visit, error)

	// Update modifies a visit (with optimistic locking). Association
	// tables are managed through the dedicated methods below.
	Update(ctx context.Context, visit *Visit) error

	// SetDeletionMark sets or clears the deletion mark.
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error

	// List retrieves visits with filtering and pagination.
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Visit], error)

	// SetDentists replaces the visit's dentist links.
	SetDentists(ctx context.Context, visitID id.ID, dentistIDs []id.ID) error

	// AddDiscountLink inserts one visit-discount link.
	AddDiscountLink(ctx context.Context, visitID, discountID id.ID) error

	// RemoveDiscountLink removes one link; reports whether it existed.
	RemoveDiscountLink(ctx context.Context, visitID, discountID id.ID) (bool, error)

	// ClearDiscountLinks removes all links and returns the removed ids.
	ClearDiscountLinks(ctx context.Context, visitID id.ID) ([]id.ID, error)

	// ListDiscountIDs returns ids of discounts associated with the visit.
	ListDiscountIDs(ctx context.Context, visitID id.ID) ([]id.ID, error)

	// UpdateFinalPrice persists a recomputed final price.
	UpdateFinalPrice(ctx context.Context, visitID id.ID, finalPrice types.Money) error
}
