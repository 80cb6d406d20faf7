// Package blog_repo provides the PostgreSQL implementation of blog post
// persistence.
package blog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain/blog"
	"dentman/internal/infrastructure/storage/postgres"
)

const postTable = "blog_posts"

// Compile-time check that PostRepo implements blog.Repository.
var _ blog.Repository = (*PostRepo)(nil)

// PostRepo implements blog.Repository.
type PostRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewPostRepo creates a new post repository.
func NewPostRepo(txManager *postgres.TxManager) *PostRepo {
	return &PostRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[blog.Post](),
	}
}

func (r *PostRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new post.
func (r *PostRepo) Create(ctx context.Context, p *blog.Post) error {
	data := postgres.StructToMap(p)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(postTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

// GetByID retrieves post by ID.
func (r *PostRepo) GetByID(ctx context.Context, postID id.ID) (*blog.Post, error) {
	return r.getBy(ctx, squirrel.Eq{"id": postID}, postID.String())
}

// GetBySlug retrieves post by slug.
func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug}, slug)
}

// FindByTitle retrieves post by title.
func (r *PostRepo) FindByTitle(ctx context.Context, title string) (*blog.Post, error) {
	return r.getBy(ctx, squirrel.Eq{"title": title}, title)
}

func (r *PostRepo) getBy(ctx context.Context, cond squirrel.Eq, key string) (*blog.Post, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(postTable).
		Where(cond).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p blog.Post
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("post", key)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &p, nil
}

// Update modifies an existing post with optimistic locking.
func (r *PostRepo) Update(ctx context.Context, p *blog.Post) error {
	data := postgres.StructToMap(p)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("post has no 'version' field or it is not an int")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "version" {
			continue
		}
		if col == "visit_counter" {
			continue // counter is bumped atomically, never rewritten
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Update(postTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": p.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("post", p.ID)
	}

	return nil
}

// List returns posts ordered newest first.
func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]*blog.Post, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(postTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("created_at DESC")

	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*blog.Post
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return items, nil
}

// IncrementVisitCounter bumps the counter with a relative database update.
func (r *PostRepo) IncrementVisitCounter(ctx context.Context, postID id.ID) error {
	q := r.builder().
		Update(postTable).
		Set("visit_counter", squirrel.Expr("visit_counter + 1")).
		Where(squirrel.Eq{"id": postID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("increment visit counter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("post", postID.String())
	}

	return nil
}

// Delete soft-deletes a post.
func (r *PostRepo) Delete(ctx context.Context, postID id.ID) error {
	q := r.builder().
		Update(postTable).
		Set("deletion_mark", true).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": postID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("post", postID.String())
	}

	return nil
}
