package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain"
	"dentman/internal/domain/visits"
	"dentman/internal/infrastructure/http/v1/dto"
)

// VisitHandler handles visit documents and their discount associations.
type VisitHandler struct {
	*BaseHandler
	service *visits.Service
}

// NewVisitHandler creates a new visit handler.
func NewVisitHandler(base *BaseHandler, service *visits.Service) *VisitHandler {
	return &VisitHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /visits - list with filtering and pagination.
func (h *VisitHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-scheduled_from")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromVisit(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /visits/:id - single visit.
func (h *VisitHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	visit, err := h.service.GetByID(ctx, visitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVisit(visit))
}

// Create handles POST /visits - book a visit.
func (h *VisitHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateVisitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	visit, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, visit); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromVisit(visit))
}

// Update handles PUT /visits/:id - update a visit.
func (h *VisitHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVisitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	visit, err := h.service.GetByID(ctx, visitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(visit); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, visit); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVisit(visit))
}

// Delete handles DELETE /visits/:id - soft delete a visit.
func (h *VisitHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, visitID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddDiscounts handles POST /visits/:id/discounts - associate discounts.
// All requested discounts must be currently valid or the whole call fails.
func (h *VisitHandler) AddDiscounts(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.AddVisitDiscountsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	discountIDs, err := req.ParsedIDs()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.AddDiscounts(ctx, visitID, discountIDs); err != nil {
		h.Error(c, err)
		return
	}

	h.respondWithVisit(c, visitID)
}

// RemoveDiscount handles DELETE /visits/:id/discounts/:discountId.
// Removing a discount that is not associated is a no-op.
func (h *VisitHandler) RemoveDiscount(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	discountID, err := id.Parse(c.Param("discountId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid discountId format"))
		return
	}

	if err := h.service.RemoveDiscount(ctx, visitID, discountID); err != nil {
		h.Error(c, err)
		return
	}

	h.respondWithVisit(c, visitID)
}

// ClearDiscounts handles DELETE /visits/:id/discounts - detach everything.
func (h *VisitHandler) ClearDiscounts(c *gin.Context) {
	ctx := c.Request.Context()

	visitID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.ClearDiscounts(ctx, visitID); err != nil {
		h.Error(c, err)
		return
	}

	h.respondWithVisit(c, visitID)
}

func (h *VisitHandler) parseID(c *gin.Context) (id.ID, bool) {
	visitID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.Nil(), false
	}
	return visitID, true
}

// respondWithVisit returns the fresh visit state after a discount operation,
// so the client sees the recomputed final price without a second request.
func (h *VisitHandler) respondWithVisit(c *gin.Context, visitID id.ID) {
	visit, err := h.service.GetByID(c.Request.Context(), visitID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromVisit(visit))
}

// RegisterRoutes registers visit routes on the given group.
func (h *VisitHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/discounts", h.AddDiscounts)
	group.DELETE("/:id/discounts/:discountId", h.RemoveDiscount)
	group.DELETE("/:id/discounts", h.ClearDiscounts)
}
