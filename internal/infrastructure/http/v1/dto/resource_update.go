package dto

import (
	"time"

	"dentman/internal/core/types"
	"dentman/internal/domain/ledger"
)

// --- Request DTOs ---

// CreateResourceUpdateRequest is the request body for recording a stock
// movement. The resource comes from the URL, only the movement itself is
// in the body.
type CreateResourceUpdateRequest struct {
	AmountChange types.Quantity `json:"amountChange" binding:"required"`
	MetricID     *string        `json:"metricId"`
	IsDelivery   bool           `json:"isDelivery"`
	Date         *time.Time     `json:"date"`
	Comment      string         `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateResourceUpdateRequest) ToEntity(resourceID string) *ledger.ResourceUpdate {
	u := ledger.NewResourceUpdate(resourceID, r.AmountChange, r.IsDelivery)
	u.MetricID = r.MetricID
	if r.Date != nil {
		u.Date = *r.Date
	}
	u.Comment = r.Comment
	return u
}

// --- Response DTOs ---

// ResourceUpdateResponse is the response body for a stock movement.
type ResourceUpdateResponse struct {
	ID           string         `json:"id"`
	Number       string         `json:"number"`
	Date         time.Time      `json:"date"`
	ResourceID   *string        `json:"resourceId,omitempty"`
	AmountChange types.Quantity `json:"amountChange"`
	MetricID     *string        `json:"metricId,omitempty"`
	IsDelivery   bool           `json:"isDelivery"`
	Comment      string         `json:"comment,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	CreatedBy    string         `json:"createdBy,omitempty"`
}

// FromResourceUpdate creates response DTO from domain entity.
func FromResourceUpdate(u *ledger.ResourceUpdate) *ResourceUpdateResponse {
	return &ResourceUpdateResponse{
		ID:           u.ID.String(),
		Number:       u.Number,
		Date:         u.Date,
		ResourceID:   u.ResourceID,
		AmountChange: u.AmountChange,
		MetricID:     u.MetricID,
		IsDelivery:   u.IsDelivery,
		Comment:      u.Comment,
		CreatedAt:    u.CreatedAt,
		CreatedBy:    u.CreatedBy,
	}
}
