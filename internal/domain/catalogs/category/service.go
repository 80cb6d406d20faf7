package category

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

// Service provides business logic for Category catalog.
type Service struct {
	*domain.CatalogService[*Category]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Category service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "category",
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

// prepareForSave handles code generation, name uniqueness and parent checks.
func (s *Service) prepareForSave(ctx context.Context, c *Category) error {
	if c.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CAT"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	if exists, _ := s.checkNameExists(ctx, c.Name, c.ID); exists {
		return apperror.NewDuplicate("category", "name", c.Name)
	}

	// A category cannot be its own parent.
	if c.ParentID != nil && *c.ParentID == c.ID.String() {
		return apperror.NewFieldValidation("parent_id", "category cannot be its own parent")
	}

	return nil
}

// FindByName retrieves category by name.
func (s *Service) FindByName(ctx context.Context, name string) (*Category, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
