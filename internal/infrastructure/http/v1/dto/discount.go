package dto

import (
	"time"

	"dentman/internal/domain/catalogs/discount"
)

// --- Request DTOs ---

// CreateDiscountRequest is the request body for creating a discount.
// Validity fields are not accepted: the evaluator owns the cached verdict,
// and the used counter only moves through visit associations.
type CreateDiscountRequest struct {
	Code           string        `json:"code"`
	Name           string        `json:"name" binding:"required"`
	Description    string        `json:"description"`
	Percent        int           `json:"percent"`
	DiscountType   discount.Type `json:"discountType" binding:"required"`
	PromotionCode  *string       `json:"promotionCode"`
	ValidSince     *time.Time    `json:"validSince"`
	ValidTo        *time.Time    `json:"validTo"`
	IsLimited      bool          `json:"isLimited"`
	LimitValue     *int          `json:"limitValue"`
	IsActive       *bool         `json:"isActive"`
	AdditionalInfo string        `json:"additionalInfo"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateDiscountRequest) ToEntity() *discount.Discount {
	d := discount.NewDiscount(r.Code, r.Name, r.Percent, r.DiscountType)
	d.Description = r.Description
	d.PromotionCode = r.PromotionCode
	d.ValidSince = r.ValidSince
	d.ValidTo = r.ValidTo
	d.IsLimited = r.IsLimited
	d.LimitValue = r.LimitValue
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	d.AdditionalInfo = r.AdditionalInfo
	return d
}

// UpdateDiscountRequest is the request body for updating a discount.
type UpdateDiscountRequest struct {
	Code           string        `json:"code"`
	Name           string        `json:"name" binding:"required"`
	Description    string        `json:"description"`
	Percent        int           `json:"percent"`
	DiscountType   discount.Type `json:"discountType" binding:"required"`
	PromotionCode  *string       `json:"promotionCode"`
	ValidSince     *time.Time    `json:"validSince"`
	ValidTo        *time.Time    `json:"validTo"`
	IsLimited      bool          `json:"isLimited"`
	LimitValue     *int          `json:"limitValue"`
	IsActive       bool          `json:"isActive"`
	AdditionalInfo string        `json:"additionalInfo"`
	Version        int           `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
// UsedCounter is left alone, it only moves through atomic deltas.
func (r *UpdateDiscountRequest) ApplyTo(d *discount.Discount) {
	d.Code = r.Code
	d.Name = r.Name
	d.Description = r.Description
	d.Percent = r.Percent
	d.DiscountType = r.DiscountType
	d.PromotionCode = r.PromotionCode
	d.ValidSince = r.ValidSince
	d.ValidTo = r.ValidTo
	d.IsLimited = r.IsLimited
	d.LimitValue = r.LimitValue
	d.IsActive = r.IsActive
	d.AdditionalInfo = r.AdditionalInfo
	d.Version = r.Version
}

// --- Response DTOs ---

// DiscountResponse is the response body for a discount.
type DiscountResponse struct {
	ID                string        `json:"id"`
	Code              string        `json:"code"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Percent           int           `json:"percent"`
	DiscountType      discount.Type `json:"discountType"`
	PromotionCode     *string       `json:"promotionCode,omitempty"`
	ValidSince        *time.Time    `json:"validSince,omitempty"`
	ValidTo           *time.Time    `json:"validTo,omitempty"`
	IsCurrentlyValid  bool          `json:"isCurrentlyValid"`
	WhyInvalidSummary string        `json:"whyInvalidSummary"`
	IsLimited         bool          `json:"isLimited"`
	LimitValue        *int          `json:"limitValue,omitempty"`
	IsActive          bool          `json:"isActive"`
	UsedCounter       int           `json:"usedCounter"`
	AdditionalInfo    string        `json:"additionalInfo,omitempty"`
	DeletionMark      bool          `json:"deletionMark"`
	Version           int           `json:"version"`
}

// FromDiscount creates response DTO from domain entity.
func FromDiscount(d *discount.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:                d.ID.String(),
		Code:              d.Code,
		Name:              d.Name,
		Description:       d.Description,
		Percent:           d.Percent,
		DiscountType:      d.DiscountType,
		PromotionCode:     d.PromotionCode,
		ValidSince:        d.ValidSince,
		ValidTo:           d.ValidTo,
		IsCurrentlyValid:  d.IsCurrentlyValid,
		WhyInvalidSummary: d.WhyInvalidSummary,
		IsLimited:         d.IsLimited,
		LimitValue:        d.LimitValue,
		IsActive:          d.IsActive,
		UsedCounter:       d.UsedCounter,
		AdditionalInfo:    d.AdditionalInfo,
		DeletionMark:      d.DeletionMark,
		Version:           d.Version,
	}
}
