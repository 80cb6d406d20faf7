package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain/blog"
	"dentman/internal/infrastructure/http/v1/dto"
)

// PostHandler handles blog posts. Reads are public, writes are staff-only.
type PostHandler struct {
	*BaseHandler
	service *blog.Service
}

// NewPostHandler creates a new blog post handler.
func NewPostHandler(base *BaseHandler, service *blog.Service) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /posts - newest first.
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit := h.ParseIntQuery(c, "limit", 20)
	offset := h.ParseIntQuery(c, "offset", 0)

	posts, err := h.service.List(ctx, limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(posts))
	for i, p := range posts {
		items[i] = dto.FromPost(p)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetBySlug handles GET /posts/:slug - public read.
// Every successful read bumps the post's visit counter.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.service.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPost(post))
}

// Create handles POST /posts - publish a post.
func (h *PostHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePostRequest
	if !h.BindJSON(c, &req) {
		return
	}

	post := req.ToEntity()

	if err := h.service.Create(ctx, post); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPost(post))
}

// Update handles PUT /posts/:id - edit a post.
func (h *PostHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	postID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindJSON(c, &req) {
		return
	}

	post, err := h.service.GetByID(ctx, postID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(post)

	if err := h.service.Update(ctx, post); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPost(post))
}
