package discount

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

// Service provides business logic for Discount catalog.
//
// Counter bumps deliberately bypass the save path: they are atomic relative
// updates issued by the visit service, and they do not re-run the evaluator.
// The cached verdict goes stale until the next save, which is accepted.
type Service struct {
	*domain.CatalogService[*Discount]
	repo      Repository
	numerator *numerator.Service

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a new Discount service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numerator *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Discount]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "discount",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numerator,
		now:            time.Now,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate runs the save pipeline plus code generation.
func (s *Service) prepareForCreate(ctx context.Context, d *Discount) error {
	if d.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("DSC"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		d.Code = code
	}

	return s.prepareForUpdate(ctx, d)
}

// prepareForUpdate trims the promotion code, refreshes the cached verdict
// and checks name uniqueness. Runs on every save.
func (s *Service) prepareForUpdate(ctx context.Context, d *Discount) error {
	d.TrimPromotionCode()
	Refresh(d, s.now())

	if exists, _ := s.checkNameExists(ctx, d.Name, d.ID); exists {
		return apperror.NewDuplicate("discount", "name", d.Name)
	}

	return nil
}

// FindByName retrieves discount by name.
func (s *Service) FindByName(ctx context.Context, name string) (*Discount, error) {
	return s.repo.FindByName(ctx, name)
}

// FindByPromotionCode retrieves a promo-code discount by its code.
func (s *Service) FindByPromotionCode(ctx context.Context, code string) (*Discount, error) {
	return s.repo.FindByPromotionCode(ctx, code)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
