// Package blog provides posts that office staff publish and patients read.
package blog

import (
	"context"
	"regexp"
	"strings"
	"time"

	"dentman/internal/core/apperror"
	"dentman/internal/core/entity"
)

const maxTitleLength = 500

// Post is a blog entry with an HTML body and a visit counter.
type Post struct {
	entity.BaseEntity

	Title string `db:"title" json:"title"`
	Slug  string `db:"slug" json:"slug"`

	// MainPhotoPath is the stored location of the post's thumbnail.
	MainPhotoPath string `db:"main_photo_path" json:"mainPhotoPath,omitempty"`

	// TextHTML is the post body, already rendered to HTML
	TextHTML string `db:"text_html" json:"textHtml"`

	// VisitCounter counts reads, bumped atomically in the database
	VisitCounter int `db:"visit_counter" json:"visitCounter"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewPost creates a post with a generated slug.
func NewPost(title, textHTML string) *Post {
	now := time.Now().UTC()
	return &Post{
		BaseEntity: entity.NewBaseEntity(),
		Title:      title,
		Slug:       Slugify(title),
		TextHTML:   textHTML,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate implements entity.Validatable interface.
func (p *Post) Validate(ctx context.Context) error {
	if p.Title == "" {
		return apperror.NewFieldValidation("title", "title is required")
	}
	if len(p.Title) > maxTitleLength {
		return apperror.NewFieldValidation("title", "title is too long")
	}
	if p.Slug == "" {
		return apperror.NewFieldValidation("slug", "slug is required")
	}
	if p.TextHTML == "" {
		return apperror.NewFieldValidation("text_html", "post text is required")
	}
	return nil
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s-]+`)
)

// Slugify converts a title into a URL slug: lowercase, alphanumerics only,
// runs of spaces and hyphens collapsed into single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
