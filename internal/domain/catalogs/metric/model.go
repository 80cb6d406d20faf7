// Package metric provides the Metric catalog.
// Metrics represent measurement units for stocked resources
// (millimeters of wire, grams of composite, pieces of implants).
package metric

import (
	"context"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
)

// Kind defines the physical dimension a metric measures.
type Kind string

const (
	KindLength Kind = "length" // mm, cm, m
	KindWeight Kind = "weight" // g, kg
	KindAmount Kind = "amount" // pieces, packs
)

// Metric represents a measurement unit for resources.
type Metric struct {
	entity.Catalog

	// Kind defines the metric category
	Kind Kind `db:"kind" json:"kind"`

	// Symbol is the short symbol (e.g., "mm", "g", "pcs")
	Symbol string `db:"symbol" json:"symbol"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewMetric creates a new Metric with required fields.
func NewMetric(code, name, symbol string, kind Kind) *Metric {
	return &Metric{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
		Symbol:  symbol,
	}
}

// Validate implements entity.Validatable interface.
func (m *Metric) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.Symbol == "" {
		return apperror.NewFieldValidation("symbol", "symbol is required")
	}

	if !isValidKind(m.Kind) {
		return apperror.NewFieldValidation("kind", "invalid metric kind").
			WithDetail("value", string(m.Kind))
	}

	return nil
}

func isValidKind(k Kind) bool {
	switch k {
	case KindLength, KindWeight, KindAmount:
		return true
	}
	return false
}
