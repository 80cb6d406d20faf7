// Package category provides the service Category catalog.
// Categories form a tree used to group dental services into subcategories.
package category

import (
	"context"

	"dentman/internal/core/entity"
)

// Category represents a service category, optionally nested under a parent.
// The parent reference is cleared when the parent category is deleted.
type Category struct {
	entity.Catalog
}

// NewCategory creates a new root-level Category.
func NewCategory(code, name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Category) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
