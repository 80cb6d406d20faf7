package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain"
	"dentman/internal/domain/ledger"
	"dentman/internal/infrastructure/http/v1/dto"
)

// ResourceUpdateHandler handles the stock movement register.
// Movements are append-only: create and read, no update or delete.
type ResourceUpdateHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewResourceUpdateHandler creates a new resource update handler.
func NewResourceUpdateHandler(base *BaseHandler, service *ledger.Service) *ResourceUpdateHandler {
	return &ResourceUpdateHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /resources/:id/updates - record a stock movement.
// The resource quantity moves atomically together with the new row.
func (h *ResourceUpdateHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	resourceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.CreateResourceUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	update := req.ToEntity(resourceID.String())

	if err := h.service.RecordUpdate(ctx, update); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromResourceUpdate(update))
}

// List handles GET /resources/:id/updates - movement history of a resource.
func (h *ResourceUpdateHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	resourceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	filter := domain.DefaultListFilter()
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.ListByResource(ctx, resourceID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromResourceUpdate(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /resource-updates/:id - single movement by id.
func (h *ResourceUpdateHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	updateID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	update, err := h.service.GetByID(ctx, updateID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromResourceUpdate(update))
}
