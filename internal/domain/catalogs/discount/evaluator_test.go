package discount

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/apperror"
)

var today = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func baseDiscount() *Discount {
	return NewDiscount("DSC-001", "Summer promo", 10, TypeOther)
}

func dayPtr(t time.Time) *time.Time { return &t }

func intPtr(v int) *int { return &v }

func TestEvaluate_ValidByDefault(t *testing.T) {
	d := baseDiscount()

	Refresh(d, today)

	assert.True(t, d.IsCurrentlyValid)
	assert.Equal(t, ReasonValid, d.WhyInvalidSummary)
}

func TestEvaluate_TooEarly(t *testing.T) {
	d := baseDiscount()
	d.ValidSince = dayPtr(today.AddDate(0, 0, 1))

	Refresh(d, today)

	assert.False(t, d.IsCurrentlyValid)
	assert.Equal(t, ReasonTooEarly, d.WhyInvalidSummary)
}

func TestEvaluate_Expired(t *testing.T) {
	d := baseDiscount()
	d.ValidTo = dayPtr(today.AddDate(0, 0, -1))

	Refresh(d, today)

	assert.False(t, d.IsCurrentlyValid)
	assert.Equal(t, ReasonExpired, d.WhyInvalidSummary)
}

func TestEvaluate_BoundaryDaysAreValid(t *testing.T) {
	d := baseDiscount()
	d.ValidSince = dayPtr(today)
	d.ValidTo = dayPtr(today)

	Refresh(d, today)

	assert.True(t, d.IsCurrentlyValid)
}

func TestEvaluate_MultipleReasonsInFixedOrder(t *testing.T) {
	d := baseDiscount()
	d.IsActive = false
	d.ValidTo = dayPtr(today.AddDate(0, 0, -1))
	d.IsLimited = true
	d.LimitValue = intPtr(5)
	d.UsedCounter = 5

	Refresh(d, today)

	require.False(t, d.IsCurrentlyValid)
	want := strings.Join([]string{ReasonInactive, ReasonExpired, ReasonLimitReached}, "\n")
	assert.Equal(t, want, d.WhyInvalidSummary)
}

func TestEvaluate_LimitCounters(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		used  int
		valid bool
	}{
		{"one remaining", 10, 9, true},
		{"zero remaining", 10, 10, false},
		{"over limit", 10, 11, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := baseDiscount()
			d.IsLimited = true
			d.LimitValue = intPtr(tc.limit)
			d.UsedCounter = tc.used

			Refresh(d, today)

			assert.Equal(t, tc.valid, d.IsCurrentlyValid)
		})
	}
}

func TestEvaluate_NilLimitTreatedAsZero(t *testing.T) {
	d := baseDiscount()
	d.IsLimited = true
	d.LimitValue = nil
	d.UsedCounter = 0

	Refresh(d, today)

	assert.False(t, d.IsCurrentlyValid)
	assert.Equal(t, ReasonLimitReached, d.WhyInvalidSummary)
}

func TestEvaluate_LimitIgnoredWhenNotLimited(t *testing.T) {
	d := baseDiscount()
	d.IsLimited = false
	d.LimitValue = intPtr(5)
	d.UsedCounter = 100

	Refresh(d, today)

	assert.True(t, d.IsCurrentlyValid)
	assert.NotContains(t, d.WhyInvalidSummary, "limit has been reached")
}

func TestTrimPromotionCode(t *testing.T) {
	d := NewDiscount("DSC-002", "Code promo", 15, TypePromoCode)
	code := "  SUMMER26  "
	d.PromotionCode = &code

	d.TrimPromotionCode()

	require.NotNil(t, d.PromotionCode)
	assert.Equal(t, "SUMMER26", *d.PromotionCode)
}

func TestValidate_PromoCodeRequired(t *testing.T) {
	ctx := context.Background()

	d := NewDiscount("DSC-003", "Code promo", 15, TypePromoCode)
	err := d.Validate(ctx)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "promotion_code", appErr.Violations[0].Field)

	// A code of only spaces is still missing.
	blank := "   "
	d.PromotionCode = &blank
	assert.Error(t, d.Validate(ctx))

	code := "SUMMER26"
	d.PromotionCode = &code
	assert.NoError(t, d.Validate(ctx))
}

func TestValidate_PercentBounds(t *testing.T) {
	ctx := context.Background()

	d := baseDiscount()
	d.Percent = -1
	assert.Error(t, d.Validate(ctx))

	d.Percent = 101
	assert.Error(t, d.Validate(ctx))

	d.Percent = 0
	assert.NoError(t, d.Validate(ctx))

	d.Percent = 100
	assert.NoError(t, d.Validate(ctx))
}
