package dto

import (
	"dentman/internal/core/types"
	"dentman/internal/domain/catalogs/resource"
)

// --- Request DTOs ---

// CreateResourceRequest is the request body for creating a resource.
// Quantity is not accepted here: stock only moves through resource updates.
type CreateResourceRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	DefaultMetricID *string `json:"defaultMetricId"`
	Description     *string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateResourceRequest) ToEntity() *resource.Resource {
	res := resource.NewResource(r.Code, r.Name)
	res.DefaultMetricID = r.DefaultMetricID
	res.Description = r.Description
	return res
}

// UpdateResourceRequest is the request body for updating a resource.
type UpdateResourceRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	DefaultMetricID *string `json:"defaultMetricId"`
	Description     *string `json:"description"`
	Version         int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
// The on-hand quantity is deliberately left untouched.
func (r *UpdateResourceRequest) ApplyTo(res *resource.Resource) {
	res.Code = r.Code
	res.Name = r.Name
	res.DefaultMetricID = r.DefaultMetricID
	res.Description = r.Description
	res.Version = r.Version
}

// --- Response DTOs ---

// ResourceResponse is the response body for a resource.
type ResourceResponse struct {
	ID              string         `json:"id"`
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	DefaultMetricID *string        `json:"defaultMetricId,omitempty"`
	Quantity        types.Quantity `json:"quantity"`
	Description     *string        `json:"description,omitempty"`
	DeletionMark    bool           `json:"deletionMark"`
	Version         int            `json:"version"`
}

// FromResource creates response DTO from domain entity.
func FromResource(res *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:              res.ID.String(),
		Code:            res.Code,
		Name:            res.Name,
		DefaultMetricID: res.DefaultMetricID,
		Quantity:        res.Quantity,
		Description:     res.Description,
		DeletionMark:    res.DeletionMark,
		Version:         res.Version,
	}
}
