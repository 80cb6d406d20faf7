package blog

import (
	"context"

	"dentman/internal/core/id"
)

// Repository defines the interface for Post persistence.
type Repository interface {
	// Create inserts a new post.
	Create(ctx context.Context, p *Post) error

	// GetByID retrieves post by ID.
	GetByID(ctx context.Context, id id.ID) (*Post, error)

	// GetBySlug retrieves post by slug (unique).
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// FindByTitle retrieves post by title (unique).
	FindByTitle(ctx context.Context, title string) (*Post, error)

	// Update modifies an existing post (with optimistic locking).
	Update(ctx context.Context, p *Post) error

	// List returns posts ordered newest first.
	List(ctx context.Context, limit, offset int) ([]*Post, error)

	// IncrementVisitCounter bumps the counter with a relative database
	// update, safe under concurrent reads.
	IncrementVisitCounter(ctx context.Context, id id.ID) error
}
