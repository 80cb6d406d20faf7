package dto

import (
	"time"

	"dentman/internal/core/entity"
	"dentman/internal/core/types"
	"dentman/internal/domain/staff"
)

// Staff entities carry clean JSON tags, so responses return them directly.
// Only request bodies get dedicated DTOs here.

// --- Worker ---

// CreateWorkerRequest is the request body for hiring a worker.
type CreateWorkerRequest struct {
	UserID    string     `json:"userId" binding:"required,uuid"`
	SinceWhen *time.Time `json:"sinceWhen"`
	ToWhen    *time.Time `json:"toWhen"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWorkerRequest) ToEntity() *staff.Worker {
	w := staff.NewWorker(r.UserID)
	if r.SinceWhen != nil {
		w.SinceWhen = *r.SinceWhen
	}
	w.ToWhen = r.ToWhen
	return w
}

// UpdateWorkerRequest is the request body for updating a worker.
type UpdateWorkerRequest struct {
	SinceWhen time.Time  `json:"sinceWhen" binding:"required"`
	ToWhen    *time.Time `json:"toWhen"`
	Version   int        `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing worker.
// Activity is re-derived by the service on save.
func (r *UpdateWorkerRequest) ApplyTo(w *staff.Worker) {
	w.SinceWhen = r.SinceWhen
	w.ToWhen = r.ToWhen
	w.Version = r.Version
}

// EndWorkerRequest closes a worker's employment.
type EndWorkerRequest struct {
	ToWhen time.Time `json:"toWhen" binding:"required"`
}

// --- Staff assignments ---

// AssignDentistStaffRequest attaches the dentist sub-role to a worker.
type AssignDentistStaffRequest struct {
	WorkerID  string `json:"workerId" binding:"required,uuid"`
	IsDentist bool   `json:"isDentist"`
}

// ToEntity converts DTO to domain entity.
func (r *AssignDentistStaffRequest) ToEntity() *staff.DentistStaff {
	now := time.Now().UTC()
	return &staff.DentistStaff{
		BaseEntity: entity.NewBaseEntity(),
		WorkerID:   r.WorkerID,
		IsDentist:  r.IsDentist,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AssignManagementStaffRequest attaches management sub-roles to a worker.
type AssignManagementStaffRequest struct {
	WorkerID    string `json:"workerId" binding:"required,uuid"`
	IsHR        bool   `json:"isHR"`
	IsFinancial bool   `json:"isFinancial"`
}

// ToEntity converts DTO to domain entity.
func (r *AssignManagementStaffRequest) ToEntity() *staff.ManagementStaff {
	now := time.Now().UTC()
	return &staff.ManagementStaff{
		BaseEntity:  entity.NewBaseEntity(),
		WorkerID:    r.WorkerID,
		IsHR:        r.IsHR,
		IsFinancial: r.IsFinancial,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// --- Schedule ---

// CreateAvailabilityRequest adds a recurring weekly window.
type CreateAvailabilityRequest struct {
	WorkerID string `json:"workerId" binding:"required,uuid"`
	Weekday  int    `json:"weekday" binding:"required"`
	Since    string `json:"since" binding:"required"`
	Until    string `json:"until" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAvailabilityRequest) ToEntity() *staff.Availability {
	now := time.Now().UTC()
	return &staff.Availability{
		BaseEntity: entity.NewBaseEntity(),
		WorkerID:   r.WorkerID,
		Weekday:    r.Weekday,
		Since:      r.Since,
		Until:      r.Until,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CreateSpecialAvailabilityRequest adds a one-off window on a date.
type CreateSpecialAvailabilityRequest struct {
	WorkerID string    `json:"workerId" binding:"required,uuid"`
	Date     time.Time `json:"date" binding:"required"`
	Since    string    `json:"since" binding:"required"`
	Until    string    `json:"until" binding:"required"`
	Reason   string    `json:"reason"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSpecialAvailabilityRequest) ToEntity() *staff.SpecialAvailability {
	now := time.Now().UTC()
	return &staff.SpecialAvailability{
		BaseEntity: entity.NewBaseEntity(),
		WorkerID:   r.WorkerID,
		Date:       r.Date,
		Since:      r.Since,
		Until:      r.Until,
		Reason:     r.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CreateInaccessibilityRequest marks a worker unavailable on a date.
type CreateInaccessibilityRequest struct {
	WorkerID   string    `json:"workerId" binding:"required,uuid"`
	Date       time.Time `json:"date" binding:"required"`
	IsWholeDay bool      `json:"isWholeDay"`
	Since      *string   `json:"since"`
	Until      *string   `json:"until"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInaccessibilityRequest) ToEntity() *staff.Inaccessibility {
	now := time.Now().UTC()
	return &staff.Inaccessibility{
		BaseEntity: entity.NewBaseEntity(),
		WorkerID:   r.WorkerID,
		Date:       r.Date,
		IsWholeDay: r.IsWholeDay,
		Since:      r.Since,
		Until:      r.Until,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// --- Employment ---

// CreateEmploymentRequest signs an employment agreement.
type CreateEmploymentRequest struct {
	WorkerID         string               `json:"workerId" binding:"required,uuid"`
	RepresentativeID string               `json:"representativeId" binding:"required,uuid"`
	Type             staff.EmploymentType `json:"type" binding:"required"`
	IsForLimitedTime bool                 `json:"isForLimitedTime"`
	SinceWhen        time.Time            `json:"sinceWhen" binding:"required"`
	UntilWhen        *time.Time           `json:"untilWhen"`
	AgreementDate    time.Time            `json:"agreementDate" binding:"required"`
	Salary           *types.Money         `json:"salary"`
	ContractScanPath string               `json:"contractScanPath"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateEmploymentRequest) ToEntity() *staff.Employment {
	now := time.Now().UTC()
	return &staff.Employment{
		BaseEntity:       entity.NewBaseEntity(),
		WorkerID:         r.WorkerID,
		RepresentativeID: r.RepresentativeID,
		Type:             r.Type,
		IsForLimitedTime: r.IsForLimitedTime,
		SinceWhen:        r.SinceWhen,
		UntilWhen:        r.UntilWhen,
		AgreementDate:    r.AgreementDate,
		Salary:           r.Salary,
		IsActive:         true,
		ContractScanPath: r.ContractScanPath,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// GrantBonusRequest awards a bonus to a worker.
type GrantBonusRequest struct {
	WorkerID          string      `json:"workerId" binding:"required,uuid"`
	ManagementStaffID string      `json:"managementStaffId" binding:"required,uuid"`
	Amount            types.Money `json:"amount" binding:"required"`
	Date              time.Time   `json:"date" binding:"required"`
	Reason            string      `json:"reason"`
}

// ToEntity converts DTO to domain entity.
func (r *GrantBonusRequest) ToEntity() *staff.Bonus {
	now := time.Now().UTC()
	return &staff.Bonus{
		BaseEntity:        entity.NewBaseEntity(),
		WorkerID:          r.WorkerID,
		ManagementStaffID: r.ManagementStaffID,
		Amount:            r.Amount,
		Date:              r.Date,
		Reason:            r.Reason,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
