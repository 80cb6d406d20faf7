package dto

import (
	"dentman/internal/domain/catalogs/dentalservice"
)

// --- Request DTOs ---

// CreateDentalServiceRequest is the request body for creating a dental service.
type CreateDentalServiceRequest struct {
	Code       string  `json:"code"`
	Name       string  `json:"name" binding:"required"`
	CategoryID *string `json:"categoryId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateDentalServiceRequest) ToEntity() *dentalservice.DentalService {
	d := dentalservice.NewDentalService(r.Code, r.Name)
	d.CategoryID = r.CategoryID
	return d
}

// UpdateDentalServiceRequest is the request body for updating a dental service.
type UpdateDentalServiceRequest struct {
	Code       string  `json:"code"`
	Name       string  `json:"name" binding:"required"`
	CategoryID *string `json:"categoryId"`
	Version    int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateDentalServiceRequest) ApplyTo(d *dentalservice.DentalService) {
	d.Code = r.Code
	d.Name = r.Name
	d.CategoryID = r.CategoryID
	d.Version = r.Version
}

// --- Response DTOs ---

// DentalServiceResponse is the response body for a dental service.
type DentalServiceResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	CategoryID   *string `json:"categoryId,omitempty"`
	DeletionMark bool    `json:"deletionMark"`
	Version      int     `json:"version"`
}

// FromDentalService creates response DTO from domain entity.
func FromDentalService(d *dentalservice.DentalService) *DentalServiceResponse {
	return &DentalServiceResponse{
		ID:           d.ID.String(),
		Code:         d.Code,
		Name:         d.Name,
		CategoryID:   d.CategoryID,
		DeletionMark: d.DeletionMark,
		Version:      d.Version,
	}
}
