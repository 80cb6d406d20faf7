// Package dentalservice provides the DentalService catalog.
// Dental services are everything a patient can get in the office, grouped
// under categories.
package dentalservice

import (
	"context"

	"dentman/internal/core/entity"
)

// DentalService represents one service offered by the office.
type DentalService struct {
	entity.Catalog

	// CategoryID is the owning category (nullable, cleared when the
	// category is deleted)
	CategoryID *string `db:"category_id" json:"categoryId,omitempty"`
}

// NewDentalService creates a new DentalService.
func NewDentalService(code, name string) *DentalService {
	return &DentalService{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (d *DentalService) Validate(ctx context.Context) error {
	return d.Catalog.Validate(ctx)
}
