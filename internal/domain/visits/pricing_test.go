package visits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dentman/internal/core/types"
	"dentman/internal/domain/catalogs/discount"
)

func percentDiscount(name string, percent int) *discount.Discount {
	return discount.NewDiscount("", name, percent, discount.TypeOther)
}

func TestComputeFinalPrice_CompoundsDiscounts(t *testing.T) {
	price := types.MustMoney("100.00")
	discounts := []*discount.Discount{
		percentDiscount("ten off", 10),
		percentDiscount("five off", 5),
	}

	final := ComputeFinalPrice(price, discounts)

	// 100.00 * 0.90 * 0.95, not 100.00 - 15.00
	assert.Equal(t, "85.5", final.String())
	assert.True(t, final.Equal(types.MustMoney("85.50")))
}

func TestComputeFinalPrice_NoDiscounts(t *testing.T) {
	price := types.MustMoney("149.99")

	final := ComputeFinalPrice(price, nil)

	assert.True(t, final.Equal(price))
}

func TestComputeFinalPrice_FullDiscount(t *testing.T) {
	price := types.MustMoney("100.00")

	final := ComputeFinalPrice(price, []*discount.Discount{percentDiscount("free", 100)})

	assert.True(t, final.IsZero())
}

func TestComputeFinalPrice_ZeroPercentKeepsPrice(t *testing.T) {
	price := types.MustMoney("80.00")

	final := ComputeFinalPrice(price, []*discount.Discount{percentDiscount("nothing", 0)})

	assert.True(t, final.Equal(price))
}

func TestComputeFinalPrice_RoundsToTwoPlaces(t *testing.T) {
	price := types.MustMoney("99.99")

	// 99.99 * 0.67 = 66.9933 -> 66.99
	final := ComputeFinalPrice(price, []*discount.Discount{percentDiscount("third off", 33)})

	assert.True(t, final.Equal(types.MustMoney("66.99")))
}

func TestComputeFinalPrice_OrderDoesNotMatter(t *testing.T) {
	price := types.MustMoney("250.00")
	a := percentDiscount("a", 20)
	b := percentDiscount("b", 15)

	ab := ComputeFinalPrice(price, []*discount.Discount{a, b})
	ba := ComputeFinalPrice(price, []*discount.Discount{b, a})

	assert.True(t, ab.Equal(ba))
	assert.True(t, ab.Equal(types.MustMoney("170.00")))
}
