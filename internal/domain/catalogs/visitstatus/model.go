// Package visitstatus provides the VisitStatus catalog.
// Statuses carry boolean flags describing which situation each status covers
// (booked, postponed, in progress, finished, resigned by either side).
package visitstatus

import (
	"context"

	"dentman/internal/core/entity"
)

// VisitStatus represents one visit status with its situation flags.
type VisitStatus struct {
	entity.Catalog

	IsBooked            bool `db:"is_booked" json:"isBooked"`
	IsPostponed         bool `db:"is_postponed" json:"isPostponed"`
	IsInProgress        bool `db:"is_in_progress" json:"isInProgress"`
	IsFinished          bool `db:"is_finished" json:"isFinished"`
	IsResignedByPatient bool `db:"is_resigned_by_patient" json:"isResignedByPatient"`
	IsResignedByDentist bool `db:"is_resigned_by_dentist" json:"isResignedByDentist"`
	IsResignedByOffice  bool `db:"is_resigned_by_office" json:"isResignedByOffice"`

	// AdditionalInfo is free-form extra info about the status
	AdditionalInfo *string `db:"additional_info" json:"additionalInfo,omitempty"`
}

// NewVisitStatus creates a new VisitStatus with all flags off.
func NewVisitStatus(code, name string) *VisitStatus {
	return &VisitStatus{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (v *VisitStatus) Validate(ctx context.Context) error {
	return v.Catalog.Validate(ctx)
}

// IsResigned reports whether the status describes any resignation.
func (v *VisitStatus) IsResigned() bool {
	return v.IsResignedByPatient || v.IsResignedByDentist || v.IsResignedByOffice
}
