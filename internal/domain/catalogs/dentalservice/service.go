package dentalservice

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

// Service provides business logic for DentalService catalog.
type Service struct {
	*domain.CatalogService[*DentalService]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new DentalService service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*DentalService]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "dental service",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numerator,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

// prepareForSave handles code generation and name uniqueness.
func (s *Service) prepareForSave(ctx context.Context, d *DentalService) error {
	if d.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("SRV"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		d.Code = code
	}

	if exists, _ := s.checkNameExists(ctx, d.Name, d.ID); exists {
		return apperror.NewDuplicate("dental service", "name", d.Name)
	}

	return nil
}

// FindByName retrieves service by name.
func (s *Service) FindByName(ctx context.Context, name string) (*DentalService, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
