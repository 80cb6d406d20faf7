package visits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/internal/domain"
	"dentman/internal/domain/catalogs/discount"
	"dentman/pkg/logger"
	"dentman/pkg/numerator"
)

// Service provides business logic for visits.
//
// Discount association changes follow a fixed protocol: one transaction that
// checks validity at the boundary (add only), adjusts usage counters with
// atomic relative updates, and recomputes the final price. Counter bumps do
// not re-run the discount evaluator; the cached verdict stays as it was
// until the discount's next save.
type Service struct {
	repo      Repository
	discounts discount.Repository
	txManager tx.Manager
	numerator *numerator.Service
	audit     domain.AuditRecorder
}

// NewService creates a new visit service. audit may be nil.
func NewService(
	repo Repository,
	discounts discount.Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
	audit domain.AuditRecorder,
) *Service {
	return &Service{
		repo:      repo,
		discounts: discounts,
		txManager: txManager,
		numerator: numerator,
		audit:     audit,
	}
}

// Create validates and stores a new visit. The final price starts as the
// base price; discounts are associated afterwards.
func (s *Service) Create(ctx context.Context, v *Visit) error {
	if err := v.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(v.EID) {
		v.EID = id.New()
	}

	if v.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("VIS"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		v.Number = number
	}

	v.FinalPrice = ComputeFinalPrice(v.Price, nil)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, v); err != nil {
			return fmt.Errorf("create visit: %w", err)
		}
		if len(v.DentistIDs) > 0 {
			if err := s.repo.SetDentists(ctx, v.ID, v.DentistIDs); err != nil {
				return fmt.Errorf("set dentists: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, v.ID, "create", v)
	return nil
}

// GetByID retrieves a visit with its associations.
func (s *Service) GetByID(ctx context.Context, visitID id.ID) (*Visit, error) {
	v, err := s.repo.GetByID(ctx, visitID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("visit", visitID.String())
		}
		return nil, err
	}
	return v, nil
}

// Update modifies a visit. The EID is immutable: whatever the caller sends,
// the stored value wins. A changed base price reprices the visit against
// its current discounts.
func (s *Service) Update(ctx context.Context, v *Visit) error {
	if err := v.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, v.ID)
		if err != nil {
			return err
		}
		v.EID = current.EID

		if err := s.repo.Update(ctx, v); err != nil {
			return fmt.Errorf("update visit: %w", err)
		}
		if err := s.repo.SetDentists(ctx, v.ID, v.DentistIDs); err != nil {
			return fmt.Errorf("set dentists: %w", err)
		}

		return s.repriceLocked(ctx, v)
	})
	if err != nil {
		return err
	}

	s.record(ctx, v.ID, "update", v)
	return nil
}

// Delete soft-deletes a visit.
func (s *Service) Delete(ctx context.Context, visitID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, visitID, true)
	})
	if err != nil {
		return err
	}
	s.record(ctx, visitID, "delete", nil)
	return nil
}

// List retrieves visits with filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Visit], error) {
	return s.repo.List(ctx, filter)
}

// AddDiscounts associates discounts with a visit.
//
// All requested discounts must be currently valid; otherwise the whole call
// is rejected, naming every invalid one. Already-associated discounts are
// skipped silently. Each newly linked discount gets its usage counter bumped
// by one, then the final price is recomputed. All inside one transaction.
func (s *Service) AddDiscounts(ctx context.Context, visitID id.ID, discountIDs []id.ID) error {
	if len(discountIDs) == 0 {
		return nil
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		visit, err := s.repo.GetForUpdate(ctx, visitID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("visit", visitID.String())
			}
			return err
		}

		requested, err := s.discounts.GetManyByIDs(ctx, discountIDs)
		if err != nil {
			return err
		}
		if len(requested) != len(discountIDs) {
			return apperror.NewNotFound("discount", discountIDs)
		}

		// Boundary check: the cached verdict decides, no re-evaluation here.
		var invalid []string
		for _, d := range requested {
			if !d.IsCurrentlyValid {
				invalid = append(invalid, d.Name)
			}
		}
		if len(invalid) > 0 {
			msg := fmt.Sprintf("These discounts are currently invalid: %s", strings.Join(invalid, ", "))
			return apperror.NewFieldValidation("discounts", msg)
		}

		for _, d := range requested {
			if visit.HasDiscount(d.ID) {
				continue
			}
			if err := s.repo.AddDiscountLink(ctx, visitID, d.ID); err != nil {
				return fmt.Errorf("link discount: %w", err)
			}
			if err := s.discounts.ApplyUsedCounterDelta(ctx, d.ID, 1); err != nil {
				return fmt.Errorf("bump used counter: %w", err)
			}
			visit.DiscountIDs = append(visit.DiscountIDs, d.ID)
		}

		return s.repriceLocked(ctx, visit)
	})
	if err != nil {
		return err
	}

	s.record(ctx, visitID, "add_discounts", discountIDs)
	return nil
}

// RemoveDiscount detaches one discount, decrements its usage counter and
// recomputes the final price. Removing a discount that is not associated
// is a no-op. Counters have no floor: history is history.
func (s *Service) RemoveDiscount(ctx context.Context, visitID, discountID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		visit, err := s.repo.GetForUpdate(ctx, visitID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("visit", visitID.String())
			}
			return err
		}

		removed, err := s.repo.RemoveDiscountLink(ctx, visitID, discountID)
		if err != nil {
			return fmt.Errorf("unlink discount: %w", err)
		}
		if !removed {
			return nil
		}

		if err := s.discounts.ApplyUsedCounterDelta(ctx, discountID, -1); err != nil {
			return fmt.Errorf("drop used counter: %w", err)
		}

		visit.DiscountIDs = withoutID(visit.DiscountIDs, discountID)
		return s.repriceLocked(ctx, visit)
	})
	if err != nil {
		return err
	}

	s.record(ctx, visitID, "remove_discount", discountID)
	return nil
}

// ClearDiscounts detaches every discount, decrementing each counter once,
// and resets the final price to the base price.
func (s *Service) ClearDiscounts(ctx context.Context, visitID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		visit, err := s.repo.GetForUpdate(ctx, visitID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("visit", visitID.String())
			}
			return err
		}

		removed, err := s.repo.ClearDiscountLinks(ctx, visitID)
		if err != nil {
			return fmt.Errorf("clear discounts: %w", err)
		}
		for _, discountID := range removed {
			if err := s.discounts.ApplyUsedCounterDelta(ctx, discountID, -1); err != nil {
				return fmt.Errorf("drop used counter: %w", err)
			}
		}

		visit.DiscountIDs = nil
		return s.repriceLocked(ctx, visit)
	})
	if err != nil {
		return err
	}

	s.record(ctx, visitID, "clear_discounts", nil)
	return nil
}

// repriceLocked recomputes and persists the final price of a visit whose
// row is already locked in the current transaction.
func (s *Service) repriceLocked(ctx context.Context, visit *Visit) error {
	var applied []*discount.Discount
	if len(visit.DiscountIDs) > 0 {
		var err error
		applied, err = s.discounts.GetManyByIDs(ctx, visit.DiscountIDs)
		if err != nil {
			return err
		}
	}

	visit.FinalPrice = ComputeFinalPrice(visit.Price, applied)
	if err := s.repo.UpdateFinalPrice(ctx, visit.ID, visit.FinalPrice); err != nil {
		return fmt.Errorf("update final price: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, visitID id.ID, action string, payload any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "visit", visitID.String(), action, payload); err != nil {
		logger.Warn(ctx, "audit record failed", "visit_id", visitID.String(), "action", action, "error", err)
	}
}

func withoutID(ids []id.ID, drop id.ID) []id.ID {
	out := ids[:0]
	for _, v := range ids {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
