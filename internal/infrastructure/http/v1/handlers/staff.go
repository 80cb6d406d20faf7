package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/domain/staff"
	"dentman/internal/infrastructure/http/v1/dto"
)

// StaffHandler handles workers, their schedules and employments.
type StaffHandler struct {
	*BaseHandler
	service *staff.Service
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(base *BaseHandler, service *staff.Service) *StaffHandler {
	return &StaffHandler{
		BaseHandler: base,
		service:     service,
	}
}

// --- Workers ---

// CreateWorker handles POST /staff/workers
func (h *StaffHandler) CreateWorker(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	worker := req.ToEntity()

	if err := h.service.CreateWorker(ctx, worker); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// ListWorkers handles GET /staff/workers
func (h *StaffHandler) ListWorkers(c *gin.Context) {
	ctx := c.Request.Context()

	activeOnly := c.Query("activeOnly") == "true"

	workers, err := h.service.ListWorkers(ctx, activeOnly)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": workers})
}

// GetWorker handles GET /staff/workers/:id
func (h *StaffHandler) GetWorker(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.parseWorkerID(c)
	if !ok {
		return
	}

	worker, err := h.service.GetWorker(ctx, workerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// UpdateWorker handles PUT /staff/workers/:id
func (h *StaffHandler) UpdateWorker(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.parseWorkerID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	worker, err := h.service.GetWorker(ctx, workerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(worker)

	if err := h.service.UpdateWorker(ctx, worker); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// EndWorker handles POST /staff/workers/:id/end - close the employment.
// Setting an end date flips the worker inactive on save.
func (h *StaffHandler) EndWorker(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.parseWorkerID(c)
	if !ok {
		return
	}

	var req dto.EndWorkerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	worker, err := h.service.EndWorker(ctx, workerID, req.ToWhen)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// --- Staff assignments ---

// AssignDentistStaff handles POST /staff/dentist-staff
func (h *StaffHandler) AssignDentistStaff(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AssignDentistStaffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	assignment := req.ToEntity()

	if err := h.service.AssignDentistStaff(ctx, assignment); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// AssignManagementStaff handles POST /staff/management-staff
func (h *StaffHandler) AssignManagementStaff(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AssignManagementStaffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	assignment := req.ToEntity()

	if err := h.service.AssignManagementStaff(ctx, assignment); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// --- Schedule ---

// AddAvailability handles POST /staff/availability
func (h *StaffHandler) AddAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAvailabilityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	window := req.ToEntity()

	if err := h.service.AddWeeklyAvailability(ctx, window); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, window)
}

// AddSpecialAvailability handles POST /staff/special-availability
func (h *StaffHandler) AddSpecialAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSpecialAvailabilityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	window := req.ToEntity()

	if err := h.service.AddSpecialAvailability(ctx, window); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, window)
}

// AddInaccessibility handles POST /staff/inaccessibility
// Partial-day records must carry both times, each missing one is reported.
func (h *StaffHandler) AddInaccessibility(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInaccessibilityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	record := req.ToEntity()

	if err := h.service.AddInaccessibility(ctx, record); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetSchedule handles GET /staff/workers/:id/schedule?from=...&to=...
func (h *StaffHandler) GetSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	workerID := c.Param("id")

	from, ok := h.parseDateQuery(c, "from", time.Now().UTC())
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "to", from.AddDate(0, 1, 0))
	if !ok {
		return
	}

	schedule, err := h.service.GetSchedule(ctx, workerID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// --- Employment ---

// CreateEmployment handles POST /staff/employments
func (h *StaffHandler) CreateEmployment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateEmploymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	employment := req.ToEntity()

	if err := h.service.CreateEmployment(ctx, employment); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, employment)
}

// ListEmployments handles GET /staff/workers/:id/employments
func (h *StaffHandler) ListEmployments(c *gin.Context) {
	ctx := c.Request.Context()

	employments, err := h.service.ListEmployments(ctx, c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": employments})
}

// GrantBonus handles POST /staff/bonuses
func (h *StaffHandler) GrantBonus(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GrantBonusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	bonus := req.ToEntity()

	if err := h.service.GrantBonus(ctx, bonus); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, bonus)
}

// ListBonuses handles GET /staff/workers/:id/bonuses
func (h *StaffHandler) ListBonuses(c *gin.Context) {
	ctx := c.Request.Context()

	bonuses, err := h.service.ListBonuses(ctx, c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": bonuses})
}

// --- helpers ---

func (h *StaffHandler) parseWorkerID(c *gin.Context) (id.ID, bool) {
	workerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.Nil(), false
	}
	return workerID, true
}

func (h *StaffHandler) parseDateQuery(c *gin.Context, key string, defaultVal time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+key+" date, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return parsed, true
}

// RegisterRoutes registers staff routes on the given group.
func (h *StaffHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/workers", h.ListWorkers)
	group.POST("/workers", h.CreateWorker)
	group.GET("/workers/:id", h.GetWorker)
	group.PUT("/workers/:id", h.UpdateWorker)
	group.POST("/workers/:id/end", h.EndWorker)
	group.GET("/workers/:id/schedule", h.GetSchedule)
	group.GET("/workers/:id/employments", h.ListEmployments)
	group.GET("/workers/:id/bonuses", h.ListBonuses)

	group.POST("/dentist-staff", h.AssignDentistStaff)
	group.POST("/management-staff", h.AssignManagementStaff)

	group.POST("/availability", h.AddAvailability)
	group.POST("/special-availability", h.AddSpecialAvailability)
	group.POST("/inaccessibility", h.AddInaccessibility)

	group.POST("/employments", h.CreateEmployment)
	group.POST("/bonuses", h.GrantBonus)
}
