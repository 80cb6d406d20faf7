// Package resource provides the Resource catalog.
// Resources are stocked consumables of the practice (implants, composite,
// anesthetic) with an on-hand quantity maintained by the ledger.
package resource

import (
	"context"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
	"dentman/internal/core/types"
)

// Resource represents a stocked consumable.
type Resource struct {
	entity.Catalog

	// DefaultMetricID is the metric new ledger entries default to (nullable,
	// cleared when the metric is deleted)
	DefaultMetricID *string `db:"default_metric_id" json:"defaultMetricId,omitempty"`

	// Quantity is the current on-hand amount, 7 decimal places.
	// Mutated only through ledger relative updates.
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewResource creates a new Resource with zero quantity.
func NewResource(code, name string) *Resource {
	return &Resource{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (r *Resource) Validate(ctx context.Context) error {
	if err := r.Catalog.Validate(ctx); err != nil {
		return err
	}

	if r.Quantity.IsNegative() {
		return apperror.NewFieldValidation("quantity", "quantity cannot be negative")
	}

	return nil
}
