package metric

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

// Service provides business logic for Metric catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Metric]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Metric service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Metric]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "metric",
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

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, m *Metric) error {
	if m.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("MET"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		m.Code = code
	}

	if exists, _ := s.checkSymbolExists(ctx, m.Symbol, m.ID); exists {
		return apperror.NewConflict("metric with this symbol already exists").
			WithDetail("symbol", m.Symbol)
	}

	return nil
}

// prepareForUpdate handles uniqueness checks.
func (s *Service) prepareForUpdate(ctx context.Context, m *Metric) error {
	if exists, _ := s.checkSymbolExists(ctx, m.Symbol, m.ID); exists {
		return apperror.NewConflict("metric with this symbol already exists").
			WithDetail("symbol", m.Symbol)
	}

	return nil
}

// FindBySymbol retrieves metric by symbol.
func (s *Service) FindBySymbol(ctx context.Context, symbol string) (*Metric, error) {
	return s.repo.FindBySymbol(ctx, symbol)
}

func (s *Service) checkSymbolExists(ctx context.Context, symbol string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindBySymbol(ctx, symbol)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
