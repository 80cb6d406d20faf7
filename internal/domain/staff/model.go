// Package staff provides workers and their employment records: role
// sub-records, weekly availability, one-off availability, inaccessibility,
// contracts and bonuses.
package staff

import (
	"context"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
	"dentman/internal/core/types"
)

// Worker wraps a user with an employment window.
// One worker record per user.
type Worker struct {
	entity.BaseEntity

	// UserID references the account (unique, cascades on user delete)
	UserID string `db:"user_id" json:"userId"`

	// SinceWhen is the first day this user is a worker
	SinceWhen time.Time `db:"since_when" json:"sinceWhen"`

	// ToWhen is the last day, nil while employment is open-ended
	ToWhen *time.Time `db:"to_when" json:"toWhen,omitempty"`

	// IsActive is derived on every save: true iff no end date is set
	IsActive bool `db:"is_active" json:"isActive"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewWorker creates a worker active from today.
func NewWorker(userID string) *Worker {
	now := time.Now().UTC()
	return &Worker{
		BaseEntity: entity.NewBaseEntity(),
		UserID:     userID,
		SinceWhen:  now,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// DeriveActivity recomputes the activity flag from the end date.
// Runs on every save.
func (w *Worker) DeriveActivity() {
	w.IsActive = w.ToWhen == nil
}

// Validate implements entity.Validatable interface.
func (w *Worker) Validate(ctx context.Context) error {
	if w.UserID == "" {
		return apperror.NewFieldValidation("user_id", "user is required")
	}
	if w.SinceWhen.IsZero() {
		return apperror.NewFieldValidation("since_when", "start date is required")
	}
	if w.ToWhen != nil && w.ToWhen.Before(w.SinceWhen) {
		return apperror.NewFieldValidation("to_when", "end date has to be later than start date")
	}
	return nil
}

// DentistStaff attaches the dentist sub-role to a worker.
type DentistStaff struct {
	entity.BaseEntity

	// WorkerID references the worker (unique, cascades)
	WorkerID string `db:"worker_id" json:"workerId"`

	IsDentist bool `db:"is_dentist" json:"isDentist"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (d *DentistStaff) Validate(ctx context.Context) error {
	if d.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	return nil
}

// ManagementStaff attaches the management sub-roles to a worker.
type ManagementStaff struct {
	entity.BaseEntity

	// WorkerID references the worker (unique, cascades)
	WorkerID string `db:"worker_id" json:"workerId"`

	IsHR        bool `db:"is_hr" json:"isHR"`
	IsFinancial bool `db:"is_financial" json:"isFinancial"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (m *ManagementStaff) Validate(ctx context.Context) error {
	if m.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	return nil
}

// Availability is a worker's recurring weekly working window.
type Availability struct {
	entity.BaseEntity

	WorkerID string `db:"worker_id" json:"workerId"`

	// Weekday is ISO: 1 = Monday ... 7 = Sunday
	Weekday int `db:"weekday" json:"weekday"`

	// Since / Until are times of day, stored as "15:04"
	Since string `db:"since" json:"since"`
	Until string `db:"until" json:"until"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (a *Availability) Validate(ctx context.Context) error {
	if a.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	if a.Weekday < 1 || a.Weekday > 7 {
		return apperror.NewFieldValidation("weekday", "weekday has to be between 1 and 7")
	}
	if a.Since == "" || a.Until == "" {
		return apperror.NewFieldValidation("since", "availability window is required")
	}
	return nil
}

// SpecialAvailability is a one-off working window on a concrete date.
type SpecialAvailability struct {
	entity.BaseEntity

	WorkerID string    `db:"worker_id" json:"workerId"`
	Date     time.Time `db:"date" json:"date"`
	Since    string    `db:"since" json:"since"`
	Until    string    `db:"until" json:"until"`
	Reason   string    `db:"reason" json:"reason"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (s *SpecialAvailability) Validate(ctx context.Context) error {
	if s.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	if s.Date.IsZero() {
		return apperror.NewFieldValidation("date", "date is required")
	}
	if s.Since == "" || s.Until == "" {
		return apperror.NewFieldValidation("since", "availability window is required")
	}
	return nil
}

// Inaccessibility marks a worker unavailable on a date, either the whole
// day or within a window.
type Inaccessibility struct {
	entity.BaseEntity

	WorkerID   string    `db:"worker_id" json:"workerId"`
	Date       time.Time `db:"date" json:"date"`
	IsWholeDay bool      `db:"is_whole_day" json:"isWholeDay"`

	// Since / Until are required when the inaccessibility is not whole-day
	Since *string `db:"since" json:"since,omitempty"`
	Until *string `db:"until" json:"until,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
// Partial-day records must carry both times; every missing one is reported.
func (i *Inaccessibility) Validate(ctx context.Context) error {
	if i.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	if i.Date.IsZero() {
		return apperror.NewFieldValidation("date", "date is required")
	}

	if !i.IsWholeDay {
		var violations []apperror.FieldViolation
		if i.Since == nil || *i.Since == "" {
			violations = append(violations, apperror.FieldViolation{
				Field:   "since",
				Message: "Please type since when is inaccessibility",
			})
		}
		if i.Until == nil || *i.Until == "" {
			violations = append(violations, apperror.FieldViolation{
				Field:   "until",
				Message: "Please type until when is inaccessibility",
			})
		}
		if len(violations) > 0 {
			return apperror.NewFieldViolations(violations)
		}
	}

	return nil
}

// EmploymentType enumerates contract kinds.
type EmploymentType string

const (
	EmploymentFullTime    EmploymentType = "full_time"
	EmploymentPartTime    EmploymentType = "part_time"
	EmploymentContract    EmploymentType = "contract"
	EmploymentFixedTerm   EmploymentType = "fixed_term"
	EmploymentTemporary   EmploymentType = "temporary"
	EmploymentInternship  EmploymentType = "internship"
	EmploymentTraineeship EmploymentType = "traineeship"
	EmploymentVolunteer   EmploymentType = "volunteer"
)

// Employment is a worker's contract, signed with a management staff
// representative.
type Employment struct {
	entity.BaseEntity

	WorkerID         string         `db:"worker_id" json:"workerId"`
	RepresentativeID string         `db:"representative_id" json:"representativeId"`
	Type             EmploymentType `db:"type" json:"type"`

	IsForLimitedTime bool       `db:"is_for_limited_time" json:"isForLimitedTime"`
	SinceWhen        time.Time  `db:"since_when" json:"sinceWhen"`
	UntilWhen        *time.Time `db:"until_when" json:"untilWhen,omitempty"`
	AgreementDate    time.Time  `db:"agreement_date" json:"agreementDate"`

	// Salary is optional, 2 decimal places
	Salary *types.Money `db:"salary" json:"salary,omitempty"`

	IsActive bool `db:"is_active" json:"isActive"`

	// ContractScanPath is the stored location of the signed contract.
	// File handling itself lives outside this service.
	ContractScanPath string `db:"contract_scan_path" json:"contractScanPath"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (e *Employment) Validate(ctx context.Context) error {
	if e.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	if e.RepresentativeID == "" {
		return apperror.NewFieldValidation("representative_id", "representative is required")
	}
	if !isValidEmploymentType(e.Type) {
		return apperror.NewFieldValidation("type", "invalid employment type").
			WithDetail("value", string(e.Type))
	}
	if e.SinceWhen.IsZero() {
		return apperror.NewFieldValidation("since_when", "start date is required")
	}
	if e.AgreementDate.IsZero() {
		return apperror.NewFieldValidation("agreement_date", "agreement date is required")
	}
	if e.IsForLimitedTime && e.UntilWhen == nil {
		return apperror.NewFieldValidation("until_when",
			"End date is required when employment is for limited time")
	}
	if e.Salary != nil && e.Salary.IsNegative() {
		return apperror.NewFieldValidation("salary", "salary cannot be negative")
	}
	return nil
}

func isValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentFixedTerm,
		EmploymentTemporary, EmploymentInternship, EmploymentTraineeship, EmploymentVolunteer:
		return true
	}
	return false
}

// Bonus is a one-off payment granted to a worker by a management staff
// member.
type Bonus struct {
	entity.BaseEntity

	WorkerID          string      `db:"worker_id" json:"workerId"`
	ManagementStaffID string      `db:"management_staff_id" json:"managementStaffId"`
	Amount            types.Money `db:"amount" json:"amount"`
	Date              time.Time   `db:"date" json:"date"`
	Reason            string      `db:"reason" json:"reason"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements entity.Validatable interface.
func (b *Bonus) Validate(ctx context.Context) error {
	if b.WorkerID == "" {
		return apperror.NewFieldValidation("worker_id", "worker is required")
	}
	if b.ManagementStaffID == "" {
		return apperror.NewFieldValidation("management_staff_id", "management staff is required")
	}
	if !b.Amount.IsPositive() {
		return apperror.NewFieldValidation("amount", "bonus amount must be positive")
	}
	if b.Date.IsZero() {
		return apperror.NewFieldValidation("date", "date is required")
	}
	return nil
}
