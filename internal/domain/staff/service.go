package staff

import (
	"context"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/pkg/logger"
)

// Service provides business logic for the staff domain.
type Service struct {
	workers      WorkerRepository
	dentists     DentistStaffRepository
	management   ManagementStaffRepository
	availability AvailabilityRepository
	employments  EmploymentRepository
	txManager    tx.Manager
}

// NewService creates a new staff service.
func NewService(
	workers WorkerRepository,
	dentists DentistStaffRepository,
	management ManagementStaffRepository,
	availability AvailabilityRepository,
	employments EmploymentRepository,
	txManager tx.Manager,
) *Service {
	return &Service{
		workers:      workers,
		dentists:     dentists,
		management:   management,
		availability: availability,
		employments:  employments,
		txManager:    txManager,
	}
}

/////////////
// Workers //
/////////////

// CreateWorker registers a user as a worker. One worker record per user.
func (s *Service) CreateWorker(ctx context.Context, w *Worker) error {
	w.DeriveActivity()
	if err := w.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.workers.GetByUserID(ctx, w.UserID); err == nil && existing != nil {
		return apperror.NewDuplicate("worker", "user_id", w.UserID)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.workers.Create(ctx, w)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "worker created", "worker_id", w.ID.String(), "user_id", w.UserID)
	return nil
}

// UpdateWorker saves worker changes. The activity flag is always recomputed
// from the end date, whatever the caller set it to.
func (s *Service) UpdateWorker(ctx context.Context, w *Worker) error {
	w.DeriveActivity()
	if err := w.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.workers.Update(ctx, w)
	})
}

// EndWorker closes a worker's employment window, which deactivates them.
func (s *Service) EndWorker(ctx context.Context, workerID id.ID, toWhen time.Time) (*Worker, error) {
	w, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	w.ToWhen = &toWhen
	if err := s.UpdateWorker(ctx, w); err != nil {
		return nil, err
	}

	logger.Info(ctx, "worker employment ended", "worker_id", w.ID.String())
	return w, nil
}

// GetWorker retrieves a worker.
func (s *Service) GetWorker(ctx context.Context, workerID id.ID) (*Worker, error) {
	return s.workers.GetByID(ctx, workerID)
}

// ListWorkers lists workers, optionally only active ones.
func (s *Service) ListWorkers(ctx context.Context, activeOnly bool) ([]*Worker, error) {
	return s.workers.List(ctx, activeOnly)
}

///////////////////
// Staff records //
///////////////////

// AssignDentistStaff attaches a dentist role record to a worker.
func (s *Service) AssignDentistStaff(ctx context.Context, d *DentistStaff) error {
	if err := d.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkWorkerExists(ctx, d.WorkerID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.dentists.Create(ctx, d)
	})
}

// AssignManagementStaff attaches a management role record to a worker.
func (s *Service) AssignManagementStaff(ctx context.Context, m *ManagementStaff) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkWorkerExists(ctx, m.WorkerID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.management.Create(ctx, m)
	})
}

//////////////////
// Availability //
//////////////////

// AddWeeklyAvailability records a recurring working window.
func (s *Service) AddWeeklyAvailability(ctx context.Context, a *Availability) error {
	if err := a.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.availability.CreateWeekly(ctx, a)
	})
}

// AddSpecialAvailability records a one-off working window.
func (s *Service) AddSpecialAvailability(ctx context.Context, sa *SpecialAvailability) error {
	if err := sa.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.availability.CreateSpecial(ctx, sa)
	})
}

// AddInaccessibility records a period when a worker is unavailable.
func (s *Service) AddInaccessibility(ctx context.Context, i *Inaccessibility) error {
	if err := i.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.availability.CreateInaccessibility(ctx, i)
	})
}

// WorkerSchedule aggregates a worker's availability records for a date range.
type WorkerSchedule struct {
	Weekly            []*Availability        `json:"weekly"`
	Special           []*SpecialAvailability `json:"special"`
	Inaccessibilities []*Inaccessibility     `json:"inaccessibilities"`
}

// GetSchedule returns a worker's full schedule for the range.
func (s *Service) GetSchedule(ctx context.Context, workerID string, from, to time.Time) (*WorkerSchedule, error) {
	weekly, err := s.availability.ListWeeklyByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	special, err := s.availability.ListSpecialByWorker(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}
	inacc, err := s.availability.ListInaccessibilityByWorker(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	return &WorkerSchedule{
		Weekly:            weekly,
		Special:           special,
		Inaccessibilities: inacc,
	}, nil
}

/////////////////
// Employments //
/////////////////

// CreateEmployment records a contract, verifying both parties exist.
func (s *Service) CreateEmployment(ctx context.Context, e *Employment) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkWorkerExists(ctx, e.WorkerID); err != nil {
		return err
	}
	repID, err := id.Parse(e.RepresentativeID)
	if err != nil {
		return apperror.NewFieldValidation("representative_id", "invalid management staff id")
	}
	if _, err := s.management.GetByID(ctx, repID); err != nil {
		return apperror.NewNotFound("management staff", e.RepresentativeID)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.employments.Create(ctx, e)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "employment created",
		"employment_id", e.ID.String(), "worker_id", e.WorkerID, "type", string(e.Type))
	return nil
}

// ListEmployments lists a worker's contracts.
func (s *Service) ListEmployments(ctx context.Context, workerID string) ([]*Employment, error) {
	return s.employments.ListByWorker(ctx, workerID)
}

// GrantBonus records a bonus payment.
func (s *Service) GrantBonus(ctx context.Context, b *Bonus) error {
	if err := b.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkWorkerExists(ctx, b.WorkerID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.employments.CreateBonus(ctx, b)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "bonus granted",
		"worker_id", b.WorkerID, "amount", b.Amount.String())
	return nil
}

// ListBonuses lists a worker's bonuses.
func (s *Service) ListBonuses(ctx context.Context, workerID string) ([]*Bonus, error) {
	return s.employments.ListBonusesByWorker(ctx, workerID)
}

func (s *Service) checkWorkerExists(ctx context.Context, workerID string) error {
	wid, err := id.Parse(workerID)
	if err != nil {
		return apperror.NewFieldValidation("worker_id", "invalid worker id")
	}
	if _, err := s.workers.GetByID(ctx, wid); err != nil {
		return apperror.NewNotFound("worker", workerID)
	}
	return nil
}
