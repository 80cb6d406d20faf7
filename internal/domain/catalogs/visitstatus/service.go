package visitstatus

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

// Service provides business logic for VisitStatus catalog.
type Service struct {
	*domain.CatalogService[*VisitStatus]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new VisitStatus service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*VisitStatus]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "visit status",
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
func (s *Service) prepareForSave(ctx context.Context, v *VisitStatus) error {
	if v.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("VST"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		v.Code = code
	}

	if exists, _ := s.checkNameExists(ctx, v.Name, v.ID); exists {
		return apperror.NewDuplicate("visit status", "name", v.Name)
	}

	return nil
}

// FindByName retrieves status by name.
func (s *Service) FindByName(ctx context.Context, name string) (*VisitStatus, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
