// Package visits provides the Visit document and its pricing engine.
// A visit is one patient appointment: a scheduled window, the dentists
// taking part, a status, a price and the discounts applied to it.
package visits

import (
	"context"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
	"dentman/internal/core/id"
	"dentman/internal/core/types"

	"time"
)

// Visit represents one appointment in the office.
type Visit struct {
	entity.Document

	// EID is an external identity assigned once at creation, never changed
	EID id.ID `db:"eid" json:"eid"`

	// PatientID references the patient (nullable, cleared when the user
	// is deleted so the visit history survives)
	PatientID *string `db:"patient_id" json:"patientId,omitempty"`

	// ServiceID references the dental service (nullable)
	ServiceID *string `db:"service_id" json:"serviceId,omitempty"`

	// DentistIDs are the dentists taking part in the visit
	DentistIDs []id.ID `db:"-" json:"dentistIds"`

	// ScheduledFrom / ScheduledTo is the appointment window
	ScheduledFrom time.Time `db:"scheduled_from" json:"scheduledFrom"`
	ScheduledTo   time.Time `db:"scheduled_to" json:"scheduledTo"`

	// StartingTime / EndingTime are the actual visit times (optional)
	StartingTime *time.Time `db:"starting_time" json:"startingTime,omitempty"`
	EndingTime   *time.Time `db:"ending_time" json:"endingTime,omitempty"`

	// VisitDescription is visible to the patient
	VisitDescription string `db:"visit_description" json:"visitDescription"`

	// VisitStatusID references the status catalog (nullable)
	VisitStatusID *string `db:"visit_status_id" json:"visitStatusId,omitempty"`

	// AdditionalInfo is office-only extra info
	AdditionalInfo string `db:"additional_info" json:"additionalInfo"`

	// Price is the base price, 2 decimal places
	Price types.Money `db:"price" json:"price"`

	// DiscountIDs are the discounts applied to this visit
	DiscountIDs []id.ID `db:"-" json:"discountIds"`

	// FinalPrice is the price after discounts, 2 decimal places
	FinalPrice types.Money `db:"final_price" json:"finalPrice"`
}

// NewVisit creates a new Visit with a generated EID.
func NewVisit(scheduledFrom, scheduledTo time.Time, price types.Money) *Visit {
	return &Visit{
		Document:      entity.NewDocument(),
		EID:           id.New(),
		ScheduledFrom: scheduledFrom,
		ScheduledTo:   scheduledTo,
		Price:         price,
	}
}

// Validate implements entity.Validatable interface.
func (v *Visit) Validate(ctx context.Context) error {
	if err := v.Document.Validate(ctx); err != nil {
		return err
	}

	if v.ScheduledFrom.IsZero() || v.ScheduledTo.IsZero() {
		return apperror.NewFieldValidation("scheduled_from", "scheduled window is required")
	}
	if v.ScheduledTo.Before(v.ScheduledFrom) {
		return apperror.NewFieldValidation("scheduled_to",
			"Scheduled to time has to later than scheduled from")
	}
	if v.StartingTime != nil && v.EndingTime != nil && v.EndingTime.Before(*v.StartingTime) {
		return apperror.NewFieldValidation("ending_time",
			"Ending time has to later than starting time")
	}
	if v.Price.IsNegative() {
		return apperror.NewFieldValidation("price", "price cannot be negative")
	}

	return nil
}

// HasDiscount reports whether the discount is already associated.
func (v *Visit) HasDiscount(discountID id.ID) bool {
	for _, d := range v.DiscountIDs {
		if d == discountID {
			return true
		}
	}
	return false
}
