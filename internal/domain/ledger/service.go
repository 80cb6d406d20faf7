package ledger

import (
	"context"
	"fmt"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/internal/domain"
	"dentman/internal/domain/catalogs/resource"
	"dentman/pkg/logger"
	"dentman/pkg/numerator"
)

// Service records stock movements and keeps resource quantities in sync.
type Service struct {
	repo      Repository
	resources resource.Repository
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates a new ledger service.
func NewService(
	repo Repository,
	resources resource.Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	return &Service{
		repo:      repo,
		resources: resources,
		txManager: txManager,
		numerator: numerator,
	}
}

// RecordUpdate appends a movement and applies its delta to the resource,
// both inside one transaction. The resource row is locked for the duration,
// so the non-negativity check and the relative update cannot race.
//
// Consumption that would drive the quantity below zero is rejected with a
// violation on amount_change.
func (s *Service) RecordUpdate(ctx context.Context, update *ResourceUpdate) error {
	if err := update.Validate(ctx); err != nil {
		return err
	}

	resourceID, err := id.Parse(*update.ResourceID)
	if err != nil {
		return apperror.NewFieldValidation("resource_id", "invalid resource id")
	}

	if update.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("RUP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		update.Number = number
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		res, err := s.resources.GetForUpdate(ctx, resourceID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("resource", resourceID.String())
			}
			return err
		}

		delta := update.SignedDelta()
		if !update.IsDelivery {
			remaining := res.Quantity + delta
			if remaining.IsNegative() {
				return apperror.NewInsufficientResource(
					resourceID.String(),
					update.AmountChange.String(),
					res.Quantity.String(),
				)
			}
		}

		if err := s.repo.Create(ctx, update); err != nil {
			return fmt.Errorf("append resource update: %w", err)
		}

		if err := s.resources.ApplyQuantityDelta(ctx, resourceID, delta); err != nil {
			return fmt.Errorf("apply quantity delta: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "resource update recorded",
		"resource_id", resourceID.String(),
		"number", update.Number,
		"delta", update.SignedDelta().String(),
		"is_delivery", update.IsDelivery,
	)
	return nil
}

// GetByID retrieves a movement by ID.
func (s *Service) GetByID(ctx context.Context, updateID id.ID) (*ResourceUpdate, error) {
	u, err := s.repo.GetByID(ctx, updateID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("resource update", updateID.String())
		}
		return nil, err
	}
	return u, nil
}

// ListByResource retrieves the movement history of one resource.
func (s *Service) ListByResource(ctx context.Context, resourceID id.ID, filter domain.ListFilter) (domain.ListResult[*ResourceUpdate], error) {
	return s.repo.ListByResource(ctx, resourceID, filter)
}
