package dto

import (
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/types"
	"dentman/internal/domain/visits"
)

// --- Request DTOs ---

// CreateVisitRequest is the request body for booking a visit.
type CreateVisitRequest struct {
	PatientID        *string     `json:"patientId"`
	ServiceID        *string     `json:"serviceId"`
	DentistIDs       []string    `json:"dentistIds"`
	ScheduledFrom    time.Time   `json:"scheduledFrom" binding:"required"`
	ScheduledTo      time.Time   `json:"scheduledTo" binding:"required"`
	StartingTime     *time.Time  `json:"startingTime"`
	EndingTime       *time.Time  `json:"endingTime"`
	VisitDescription string      `json:"visitDescription"`
	VisitStatusID    *string     `json:"visitStatusId"`
	AdditionalInfo   string      `json:"additionalInfo"`
	Price            types.Money `json:"price"`
	Comment          string      `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateVisitRequest) ToEntity() (*visits.Visit, error) {
	v := visits.NewVisit(r.ScheduledFrom, r.ScheduledTo, r.Price)
	v.PatientID = r.PatientID
	v.ServiceID = r.ServiceID
	v.StartingTime = r.StartingTime
	v.EndingTime = r.EndingTime
	v.VisitDescription = r.VisitDescription
	v.VisitStatusID = r.VisitStatusID
	v.AdditionalInfo = r.AdditionalInfo
	v.Comment = r.Comment

	dentistIDs, err := parseIDList(r.DentistIDs, "dentistIds")
	if err != nil {
		return nil, err
	}
	v.DentistIDs = dentistIDs

	return v, nil
}

// UpdateVisitRequest is the request body for updating a visit.
type UpdateVisitRequest struct {
	PatientID        *string     `json:"patientId"`
	ServiceID        *string     `json:"serviceId"`
	DentistIDs       []string    `json:"dentistIds"`
	ScheduledFrom    time.Time   `json:"scheduledFrom" binding:"required"`
	ScheduledTo      time.Time   `json:"scheduledTo" binding:"required"`
	StartingTime     *time.Time  `json:"startingTime"`
	EndingTime       *time.Time  `json:"endingTime"`
	VisitDescription string      `json:"visitDescription"`
	VisitStatusID    *string     `json:"visitStatusId"`
	AdditionalInfo   string      `json:"additionalInfo"`
	Price            types.Money `json:"price"`
	Comment          string      `json:"comment"`
	Version          int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
// EID, discounts and final price are managed by the service, not the client.
func (r *UpdateVisitRequest) ApplyTo(v *visits.Visit) error {
	v.PatientID = r.PatientID
	v.ServiceID = r.ServiceID
	v.ScheduledFrom = r.ScheduledFrom
	v.ScheduledTo = r.ScheduledTo
	v.StartingTime = r.StartingTime
	v.EndingTime = r.EndingTime
	v.VisitDescription = r.VisitDescription
	v.VisitStatusID = r.VisitStatusID
	v.AdditionalInfo = r.AdditionalInfo
	v.Price = r.Price
	v.Comment = r.Comment
	v.Version = r.Version

	dentistIDs, err := parseIDList(r.DentistIDs, "dentistIds")
	if err != nil {
		return err
	}
	v.DentistIDs = dentistIDs

	return nil
}

// AddVisitDiscountsRequest is the request body for associating discounts.
type AddVisitDiscountsRequest struct {
	DiscountIDs []string `json:"discountIds" binding:"required,min=1"`
}

// ParsedIDs returns the discount IDs as typed identifiers.
func (r *AddVisitDiscountsRequest) ParsedIDs() ([]id.ID, error) {
	return parseIDList(r.DiscountIDs, "discountIds")
}

// --- Response DTOs ---

// VisitResponse is the response body for a visit.
type VisitResponse struct {
	ID               string      `json:"id"`
	EID              string      `json:"eid"`
	Number           string      `json:"number"`
	Date             time.Time   `json:"date"`
	PatientID        *string     `json:"patientId,omitempty"`
	ServiceID        *string     `json:"serviceId,omitempty"`
	DentistIDs       []string    `json:"dentistIds"`
	ScheduledFrom    time.Time   `json:"scheduledFrom"`
	ScheduledTo      time.Time   `json:"scheduledTo"`
	StartingTime     *time.Time  `json:"startingTime,omitempty"`
	EndingTime       *time.Time  `json:"endingTime,omitempty"`
	VisitDescription string      `json:"visitDescription"`
	VisitStatusID    *string     `json:"visitStatusId,omitempty"`
	AdditionalInfo   string      `json:"additionalInfo,omitempty"`
	Price            types.Money `json:"price"`
	DiscountIDs      []string    `json:"discountIds"`
	FinalPrice       types.Money `json:"finalPrice"`
	Comment          string      `json:"comment,omitempty"`
	DeletionMark     bool        `json:"deletionMark"`
	Version          int         `json:"version"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// FromVisit creates response DTO from domain entity.
func FromVisit(v *visits.Visit) *VisitResponse {
	return &VisitResponse{
		ID:               v.ID.String(),
		EID:              v.EID.String(),
		Number:           v.Number,
		Date:             v.Date,
		PatientID:        v.PatientID,
		ServiceID:        v.ServiceID,
		DentistIDs:       formatIDList(v.DentistIDs),
		ScheduledFrom:    v.ScheduledFrom,
		ScheduledTo:      v.ScheduledTo,
		StartingTime:     v.StartingTime,
		EndingTime:       v.EndingTime,
		VisitDescription: v.VisitDescription,
		VisitStatusID:    v.VisitStatusID,
		AdditionalInfo:   v.AdditionalInfo,
		Price:            v.Price,
		DiscountIDs:      formatIDList(v.DiscountIDs),
		FinalPrice:       v.FinalPrice,
		Comment:          v.Comment,
		DeletionMark:     v.DeletionMark,
		Version:          v.Version,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// --- helpers ---

func parseIDList(raw []string, field string) ([]id.ID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]id.ID, 0, len(raw))
	for _, s := range raw {
		parsed, err := id.Parse(s)
		if err != nil {
			return nil, apperror.NewFieldValidation(field, "invalid id: "+s)
		}
		out = append(out, parsed)
	}
	return out, nil
}

func formatIDList(ids []id.ID) []string {
	out := make([]string, 0, len(ids))
	for _, i := range ids {
		out = append(out, i.String())
	}
	return out
}
