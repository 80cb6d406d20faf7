package visits

import (
	"github.com/shopspring/decimal"

	"dentman/internal/core/types"
	"dentman/internal/domain/catalogs/discount"
)

var hundred = decimal.NewFromInt(100)

// ComputeFinalPrice applies the associated discounts to the base price.
// Each discount multiplies the running total by (1 - percent/100); the
// result is rounded to 2 decimal places once, at the end.
//
// 100.00 with a 10% and a 5% discount is 85.50, not 85.00: the discounts
// compound, they do not add up.
func ComputeFinalPrice(price types.Money, discounts []*discount.Discount) types.Money {
	final := price

	for _, d := range discounts {
		percent := decimal.NewFromInt(int64(d.Percent))
		multiplier := decimal.NewFromInt(1).Sub(percent.Div(hundred))
		final = final.Mul(multiplier)
	}

	return final.Round(2)
}
