package dto

import (
	"time"

	"dentman/internal/domain/blog"
)

// --- Request DTOs ---

// CreatePostRequest is the request body for publishing a blog post.
// The slug is generated from the title unless given explicitly.
type CreatePostRequest struct {
	Title         string `json:"title" binding:"required,max=500"`
	Slug          string `json:"slug"`
	MainPhotoPath string `json:"mainPhotoPath"`
	TextHTML      string `json:"textHtml" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePostRequest) ToEntity() *blog.Post {
	p := blog.NewPost(r.Title, r.TextHTML)
	if r.Slug != "" {
		p.Slug = r.Slug
	}
	p.MainPhotoPath = r.MainPhotoPath
	return p
}

// UpdatePostRequest is the request body for updating a blog post.
type UpdatePostRequest struct {
	Title         string `json:"title" binding:"required,max=500"`
	Slug          string `json:"slug"`
	MainPhotoPath string `json:"mainPhotoPath"`
	TextHTML      string `json:"textHtml" binding:"required"`
	Version       int    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing post.
// The visit counter is read-only for clients.
func (r *UpdatePostRequest) ApplyTo(p *blog.Post) {
	p.Title = r.Title
	p.Slug = r.Slug
	p.MainPhotoPath = r.MainPhotoPath
	p.TextHTML = r.TextHTML
	p.Version = r.Version
}

// --- Response DTOs ---

// PostResponse is the response body for a blog post.
type PostResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	MainPhotoPath string    `json:"mainPhotoPath,omitempty"`
	TextHTML      string    `json:"textHtml"`
	VisitCounter  int       `json:"visitCounter"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Version       int       `json:"version"`
}

// FromPost creates response DTO from domain entity.
func FromPost(p *blog.Post) *PostResponse {
	return &PostResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Slug:          p.Slug,
		MainPhotoPath: p.MainPhotoPath,
		TextHTML:      p.TextHTML,
		VisitCounter:  p.VisitCounter,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}
