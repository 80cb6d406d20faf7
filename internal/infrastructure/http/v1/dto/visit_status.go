package dto

import (
	"dentman/internal/domain/catalogs/visitstatus"
)

// --- Request DTOs ---

// CreateVisitStatusRequest is the request body for creating a visit status.
type CreateVisitStatusRequest struct {
	Code                string  `json:"code"`
	Name                string  `json:"name" binding:"required"`
	IsBooked            bool    `json:"isBooked"`
	IsPostponed         bool    `json:"isPostponed"`
	IsInProgress        bool    `json:"isInProgress"`
	IsFinished          bool    `json:"isFinished"`
	IsResignedByPatient bool    `json:"isResignedByPatient"`
	IsResignedByDentist bool    `json:"isResignedByDentist"`
	IsResignedByOffice  bool    `json:"isResignedByOffice"`
	AdditionalInfo      *string `json:"additionalInfo"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateVisitStatusRequest) ToEntity() *visitstatus.VisitStatus {
	v := visitstatus.NewVisitStatus(r.Code, r.Name)
	v.IsBooked = r.IsBooked
	v.IsPostponed = r.IsPostponed
	v.IsInProgress = r.IsInProgress
	v.IsFinished = r.IsFinished
	v.IsResignedByPatient = r.IsResignedByPatient
	v.IsResignedByDentist = r.IsResignedByDentist
	v.IsResignedByOffice = r.IsResignedByOffice
	v.AdditionalInfo = r.AdditionalInfo
	return v
}

// UpdateVisitStatusRequest is the request body for updating a visit status.
type UpdateVisitStatusRequest struct {
	Code                string  `json:"code"`
	Name                string  `json:"name" binding:"required"`
	IsBooked            bool    `json:"isBooked"`
	IsPostponed         bool    `json:"isPostponed"`
	IsInProgress        bool    `json:"isInProgress"`
	IsFinished          bool    `json:"isFinished"`
	IsResignedByPatient bool    `json:"isResignedByPatient"`
	IsResignedByDentist bool    `json:"isResignedByDentist"`
	IsResignedByOffice  bool    `json:"isResignedByOffice"`
	AdditionalInfo      *string `json:"additionalInfo"`
	Version             int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateVisitStatusRequest) ApplyTo(v *visitstatus.VisitStatus) {
	v.Code = r.Code
	v.Name = r.Name
	v.IsBooked = r.IsBooked
	v.IsPostponed = r.IsPostponed
	v.IsInProgress = r.IsInProgress
	v.IsFinished = r.IsFinished
	v.IsResignedByPatient = r.IsResignedByPatient
	v.IsResignedByDentist = r.IsResignedByDentist
	v.IsResignedByOffice = r.IsResignedByOffice
	v.AdditionalInfo = r.AdditionalInfo
	v.Version = r.Version
}

// --- Response DTOs ---

// VisitStatusResponse is the response body for a visit status.
type VisitStatusResponse struct {
	ID                  string  `json:"id"`
	Code                string  `json:"code"`
	Name                string  `json:"name"`
	IsBooked            bool    `json:"isBooked"`
	IsPostponed         bool    `json:"isPostponed"`
	IsInProgress        bool    `json:"isInProgress"`
	IsFinished          bool    `json:"isFinished"`
	IsResignedByPatient bool    `json:"isResignedByPatient"`
	IsResignedByDentist bool    `json:"isResignedByDentist"`
	IsResignedByOffice  bool    `json:"isResignedByOffice"`
	AdditionalInfo      *string `json:"additionalInfo,omitempty"`
	DeletionMark        bool    `json:"deletionMark"`
	Version             int     `json:"version"`
}

// FromVisitStatus creates response DTO from domain entity.
func FromVisitStatus(v *visitstatus.VisitStatus) *VisitStatusResponse {
	return &VisitStatusResponse{
		ID:                  v.ID.String(),
		Code:                v.Code,
		Name:                v.Name,
		IsBooked:            v.IsBooked,
		IsPostponed:         v.IsPostponed,
		IsInProgress:        v.IsInProgress,
		IsFinished:          v.IsFinished,
		IsResignedByPatient: v.IsResignedByPatient,
		IsResignedByDentist: v.IsResignedByDentist,
		IsResignedByOffice:  v.IsResignedByOffice,
		AdditionalInfo:      v.AdditionalInfo,
		DeletionMark:        v.DeletionMark,
		Version:             v.Version,
	}
}
