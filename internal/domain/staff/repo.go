package staff

import (
	"context"
	"time"

	"dentman/internal/core/id"
)

// WorkerRepository defines the interface for Worker persistence.
type WorkerRepository interface {
	Create(ctx context.Context, w *Worker) error
	GetByID(ctx context.Context, id id.ID) (*Worker, error)
	GetByUserID(ctx context.Context, userID string) (*Worker, error)
	Update(ctx context.Context, w *Worker) error
	List(ctx context.Context, activeOnly bool) ([]*Worker, error)
}

// DentistStaffRepository defines the interface for DentistStaff persistence.
type DentistStaffRepository interface {
	Create(ctx context.Context, d *DentistStaff) error
	GetByWorkerID(ctx context.Context, workerID string) (*DentistStaff, error)
	Update(ctx context.Context, d *DentistStaff) error
}

// ManagementStaffRepository defines the interface for ManagementStaff persistence.
type ManagementStaffRepository interface {
	Create(ctx context.Context, m *ManagementStaff) error
	GetByID(ctx context.Context, id id.ID) (*ManagementStaff, error)
	GetByWorkerID(ctx context.Context, workerID string) (*ManagementStaff, error)
	Update(ctx context.Context, m *ManagementStaff) error
}

// AvailabilityRepository persists recurring and one-off availability plus
// inaccessibility records.
type AvailabilityRepository interface {
	CreateWeekly(ctx context.Context, a *Availability) error
	ListWeeklyByWorker(ctx context.Context, workerID string) ([]*Availability, error)
	DeleteWeekly(ctx context.Context, id id.ID) error

	CreateSpecial(ctx context.Context, s *SpecialAvailability) error
	ListSpecialByWorker(ctx context.Context, workerID string, from, to time.Time) ([]*SpecialAvailability, error)
	DeleteSpecial(ctx context.Context, id id.ID) error

	CreateInaccessibility(ctx context.Context, i *Inaccessibility) error
	ListInaccessibilityByWorker(ctx context.Context, workerID string, from, to time.Time) ([]*Inaccessibility, error)
	DeleteInaccessibility(ctx context.Context, id id.ID) error
}

// EmploymentRepository defines the interface for Employment and Bonus persistence.
type EmploymentRepository interface {
	Create(ctx context.Context, e *Employment) error
	GetByID(ctx context.Context, id id.ID) (*Employment, error)
	ListByWorker(ctx context.Context, workerID string) ([]*Employment, error)
	Update(ctx context.Context, e *Employment) error

	CreateBonus(ctx context.Context, b *Bonus) error
	ListBonusesByWorker(ctx context.Context, workerID string) ([]*Bonus, error)
}
