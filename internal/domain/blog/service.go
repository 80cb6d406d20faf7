package blog

import (
	"context"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/pkg/logger"
)

// Service provides business logic for blog posts.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new blog service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create saves a new post. The slug is generated from the title when
// the caller left it empty. Both title and slug must be unique.
func (s *Service) Create(ctx context.Context, p *Post) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}

	if err := p.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.FindByTitle(ctx, p.Title); err == nil && existing != nil {
		return apperror.NewDuplicate("post", "title", p.Title)
	}
	if existing, err := s.repo.GetBySlug(ctx, p.Slug); err == nil && existing != nil {
		return apperror.NewDuplicate("post", "slug", p.Slug)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "post created", "post_id", p.ID.String(), "slug", p.Slug)
	return nil
}

// Update saves post changes, keeping the title and slug unique.
func (s *Service) Update(ctx context.Context, p *Post) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}

	if err := p.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.FindByTitle(ctx, p.Title); err == nil && existing != nil && existing.ID != p.ID {
		return apperror.NewDuplicate("post", "title", p.Title)
	}
	if existing, err := s.repo.GetBySlug(ctx, p.Slug); err == nil && existing != nil && existing.ID != p.ID {
		return apperror.NewDuplicate("post", "slug", p.Slug)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
}

// GetBySlug returns a post and registers the read. Counter failures do
// not fail the read.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementVisitCounter(ctx, p.ID); err != nil {
		logger.Warn(ctx, "visit counter bump failed", "post_id", p.ID.String(), "error", err)
	} else {
		p.VisitCounter++
	}

	return p, nil
}

// GetByID retrieves a post without touching the visit counter.
func (s *Service) GetByID(ctx context.Context, postID id.ID) (*Post, error) {
	return s.repo.GetByID(ctx, postID)
}

// List returns posts ordered newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit, offset)
}
