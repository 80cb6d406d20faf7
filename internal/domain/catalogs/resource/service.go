package resource

import (
	"context"
	"fmt"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/internal/domain"
	"dentman/pkg/numerator"
)

// Service provides business logic for Resource catalog.
type Service struct {
	*domain.CatalogService[*Resource]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Resource service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Resource]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "resource",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numerator,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and name uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, r *Resource) error {
	if r.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("RES"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		r.Code = code
	}

	if exists, _ := s.checkNameExists(ctx, r.Name, r.ID); exists {
		return apperror.NewDuplicate("resource", "name", r.Name)
	}

	return nil
}

// prepareForUpdate handles name uniqueness.
func (s *Service) prepareForUpdate(ctx context.Context, r *Resource) error {
	if exists, _ := s.checkNameExists(ctx, r.Name, r.ID); exists {
		return apperror.NewDuplicate("resource", "name", r.Name)
	}

	return nil
}

// FindByName retrieves resource by name.
func (s *Service) FindByName(ctx context.Context, name string) (*Resource, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
