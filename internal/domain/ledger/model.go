// Package ledger provides the append-only resource update register.
// Every delivery to and consumption from stock is a ResourceUpdate row;
// the resource's on-hand quantity is only ever changed through it.
package ledger

import (
	"context"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
	"dentman/internal/core/types"
)

// ResourceUpdate represents one stock movement.
// Rows are never updated or deleted once written.
type ResourceUpdate struct {
	entity.Document

	// ResourceID references the stocked resource (nullable, cleared when
	// the resource is deleted so history survives)
	ResourceID *string `db:"resource_id" json:"resourceId,omitempty"`

	// AmountChange is the positive magnitude of the movement, 7 decimal
	// places. Direction comes from IsDelivery.
	AmountChange types.Quantity `db:"amount_change" json:"amountChange"`

	// MetricID is the metric the amount was recorded in (nullable)
	MetricID *string `db:"metric_id" json:"metricId,omitempty"`

	// IsDelivery is true for stock coming in, false for consumption
	IsDelivery bool `db:"is_delivery" json:"isDelivery"`
}

// NewResourceUpdate creates a movement for the given resource.
func NewResourceUpdate(resourceID string, amount types.Quantity, isDelivery bool) *ResourceUpdate {
	return &ResourceUpdate{
		Document:     entity.NewDocument(),
		ResourceID:   &resourceID,
		AmountChange: amount,
		IsDelivery:   isDelivery,
	}
}

// Validate implements entity.Validatable interface.
func (u *ResourceUpdate) Validate(ctx context.Context) error {
	if err := u.Document.Validate(ctx); err != nil {
		return err
	}

	if u.ResourceID == nil || *u.ResourceID == "" {
		return apperror.NewFieldValidation("resource_id", "resource is required")
	}

	if !u.AmountChange.IsPositive() {
		return apperror.NewFieldValidation("amount_change", "amount change must be positive")
	}

	return nil
}

// SignedDelta returns the quantity delta this movement applies to the
// resource: positive for deliveries, negative for consumption.
func (u *ResourceUpdate) SignedDelta() types.Quantity {
	if u.IsDelivery {
		return u.AmountChange
	}
	return u.AmountChange.Neg()
}
