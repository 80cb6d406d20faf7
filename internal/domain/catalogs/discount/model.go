// Package discount provides the Discount catalog and its validity evaluator.
// Every save recomputes the cached validity flag and the human-readable
// summary explaining why the discount is or is not usable.
package discount

import (
	"context"
	"strings"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
)

// Type defines the kind of promotion.
type Type string

const (
	// TypeFirstVisit is a promotion for patients visiting for the first time.
	TypeFirstVisit Type = "first_visit"
	// TypePromoCode is a promotion unlocked by typing a code.
	TypePromoCode Type = "promo_code"
	// TypeMinPurchase is a promotion for regular patients.
	TypeMinPurchase Type = "min_purchase"
	// TypeOther covers everything else.
	TypeOther Type = "other"
)

// Discount represents a promotion that is or was available to patients.
type Discount struct {
	entity.Catalog

	// Description is the patient-facing description
	Description string `db:"description" json:"description"`

	// Percent is the discount percentage, 0 to 100
	Percent int `db:"percent" json:"percent"`

	// DiscountType is the promotion kind
	DiscountType Type `db:"discount_type" json:"discountType"`

	// PromotionCode is required when DiscountType is promo_code
	PromotionCode *string `db:"promotion_code" json:"promotionCode,omitempty"`

	// ValidSince is the first day the discount can be used (nil = since forever)
	ValidSince *time.Time `db:"valid_since" json:"validSince,omitempty"`

	// ValidTo is the last day the discount can be used (nil = to forever)
	ValidTo *time.Time `db:"valid_to" json:"validTo,omitempty"`

	// IsCurrentlyValid caches the evaluator verdict so reads don't recompute.
	// Refreshed on every save.
	IsCurrentlyValid bool `db:"is_currently_valid" json:"isCurrentlyValid"`

	// WhyInvalidSummary explains the verdict (reasons joined by newlines,
	// or the valid message)
	WhyInvalidSummary string `db:"why_invalid_summary" json:"whyInvalidSummary"`

	// IsLimited indicates the discount has a usage cap
	IsLimited bool `db:"is_limited" json:"isLimited"`

	// LimitValue is the usage cap when IsLimited (nil treated as 0)
	LimitValue *int `db:"limit_value" json:"limitValue,omitempty"`

	// IsActive is the manual on/off switch
	IsActive bool `db:"is_active" json:"isActive"`

	// UsedCounter counts how many times the discount was used.
	// Mutated only through atomic relative updates.
	UsedCounter int `db:"used_counter" json:"usedCounter"`

	// AdditionalInfo is office-only extra info
	AdditionalInfo string `db:"additional_info" json:"additionalInfo"`
}

// NewDiscount creates a new active Discount.
func NewDiscount(code, name string, percent int, discountType Type) *Discount {
	return &Discount{
		Catalog:      entity.NewCatalog(code, name),
		Percent:      percent,
		DiscountType: discountType,
		IsActive:     true,
	}
}

// Validate implements entity.Validatable interface.
func (d *Discount) Validate(ctx context.Context) error {
	if err := d.Catalog.Validate(ctx); err != nil {
		return err
	}

	if d.Percent < 0 {
		return apperror.NewFieldValidation("percent", "Value cannot be less than 0")
	}
	if d.Percent > 100 {
		return apperror.NewFieldValidation("percent", "Value cannot be greater than 100")
	}

	if !isValidType(d.DiscountType) {
		return apperror.NewFieldValidation("discount_type", "invalid discount type").
			WithDetail("value", string(d.DiscountType))
	}

	if d.LimitValue != nil && *d.LimitValue < 0 {
		return apperror.NewFieldValidation("limit_value", "Value cannot be less than 0")
	}

	// Promotion code is required when the type demands one. Trailing spaces
	// don't count, a code of only spaces is still missing.
	if d.DiscountType == TypePromoCode && d.trimmedCode() == "" {
		return apperror.NewFieldValidation("promotion_code",
			"Set promotion code because discount's type requires promotion code")
	}

	return nil
}

// TrimPromotionCode strips surrounding whitespace from the promotion code.
// Runs on every save.
func (d *Discount) TrimPromotionCode() {
	if d.PromotionCode != nil {
		trimmed := strings.TrimSpace(*d.PromotionCode)
		d.PromotionCode = &trimmed
	}
}

func (d *Discount) trimmedCode() string {
	if d.PromotionCode == nil {
		return ""
	}
	return strings.TrimSpace(*d.PromotionCode)
}

// EffectiveLimit returns the usage cap, treating an absent limit as 0.
func (d *Discount) EffectiveLimit() int {
	if d.LimitValue == nil {
		return 0
	}
	return *d.LimitValue
}

func isValidType(t Type) bool {
	switch t {
	case TypeFirstVisit, TypePromoCode, TypeMinPurchase, TypeOther:
		return true
	}
	return false
}
