package v1

import (
	"github.com/gin-gonic/gin"

	"dentman/internal/domain"
	"dentman/internal/domain/accounts"
	"dentman/internal/domain/blog"
	"dentman/internal/domain/catalogs/category"
	"dentman/internal/domain/catalogs/dentalservice"
	"dentman/internal/domain/catalogs/discount"
	"dentman/internal/domain/catalogs/metric"
	"dentman/internal/domain/catalogs/resource"
	"dentman/internal/domain/catalogs/visitstatus"
	"dentman/internal/domain/ledger"
	"dentman/internal/domain/staff"
	"dentman/internal/domain/visits"
	"dentman/internal/infrastructure/http/v1/handlers"
	"dentman/internal/infrastructure/http/v1/middleware"
	"dentman/internal/infrastructure/storage/postgres"
	"dentman/internal/infrastructure/storage/postgres/blog_repo"
	"dentman/internal/infrastructure/storage/postgres/catalog_repo"
	"dentman/internal/infrastructure/storage/postgres/ledger_repo"
	"dentman/internal/infrastructure/storage/postgres/staff_repo"
	"dentman/internal/infrastructure/storage/postgres/visit_repo"
	"dentman/pkg/logger"
	"dentman/pkg/numerator"
)

// Role names used for route guards. Dev accounts bypass every guard.
const (
	RoleManagementStaff = "management_staff"
	RoleDentistStaff    = "dentist_staff"
	RoleHR              = "hr"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs queries and transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AccountsService for authentication endpoints
	AccountsService *accounts.Service

	// Numerator for document number generation
	Numerator *numerator.Service

	// Audit records entity changes (may be nil)
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)
		registerPublicBlogRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerVisitRoutes(protected, cfg)
		registerStaffRoutes(protected, cfg)
		registerBlogAdminRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication and account endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AccountsService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AccountsService)

	publicAuth := rg.Group("/auth")

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)

	users := rg.Group("/users")
	users.Use(middleware.Auth(cfg.JWTValidator))
	authHandler.RegisterUserRoutes(users)
}

// registerPublicBlogRoutes registers the patient-facing blog reads.
func registerPublicBlogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := blog_repo.NewPostRepo(cfg.TxManager)
	service := blog.NewService(repo, cfg.TxManager)
	handler := handlers.NewPostHandler(baseHandler, service)

	posts := rg.Group("/posts")
	posts.GET("", handler.List)
	posts.GET("/:slug", handler.GetBySlug)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- METRICS ---
	{
		repo := catalog_repo.NewMetricRepo(cfg.TxManager)
		service := metric.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewMetricHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/metrics"), handler, RoleManagementStaff)
	}

	// --- RESOURCES + STOCK MOVEMENTS ---
	{
		repo := catalog_repo.NewResourceRepo(cfg.TxManager)
		service := resource.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewResourceHandler(baseHandler, service)

		resources := catalogs.Group("/resources")
		RegisterCatalogRoutes(resources, handler, RoleManagementStaff)

		updateRepo := ledger_repo.NewResourceUpdateRepo(cfg.TxManager)
		updateService := ledger.NewService(updateRepo, repo, cfg.TxManager, cfg.Numerator)
		updateHandler := handlers.NewResourceUpdateHandler(baseHandler, updateService)

		moveStock := middleware.RequireRole(RoleManagementStaff, RoleDentistStaff)
		resources.POST("/:id/updates", moveStock, updateHandler.Create)
		resources.GET("/:id/updates", updateHandler.List)
		rg.GET("/resource-updates/:id", updateHandler.Get)
	}

	// --- CATEGORIES ---
	{
		repo := catalog_repo.NewCategoryRepo(cfg.TxManager)
		service := category.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewCategoryHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/categories"), handler, RoleManagementStaff)
	}

	// --- DENTAL SERVICES ---
	{
		repo := catalog_repo.NewDentalServiceRepo(cfg.TxManager)
		service := dentalservice.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewDentalServiceHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/dental-services"), handler, RoleManagementStaff)
	}

	// --- VISIT STATUSES ---
	{
		repo := catalog_repo.NewVisitStatusRepo(cfg.TxManager)
		service := visitstatus.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewVisitStatusHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/visit-statuses"), handler, RoleManagementStaff)
	}

	// --- DISCOUNTS ---
	{
		repo := catalog_repo.NewDiscountRepo(cfg.TxManager)
		service := discount.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewDiscountHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/discounts"), handler, RoleManagementStaff)
	}
}

// registerVisitRoutes registers visit document endpoints.
func registerVisitRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	visitRepo := visit_repo.NewVisitRepo(cfg.TxManager)
	discountRepo := catalog_repo.NewDiscountRepo(cfg.TxManager)

	service := visits.NewService(visitRepo, discountRepo, cfg.TxManager, cfg.Numerator, auditRecorder(cfg))
	handler := handlers.NewVisitHandler(baseHandler, service)

	group := rg.Group("/visits")
	group.Use(middleware.RequireRole(RoleManagementStaff, RoleDentistStaff))
	handler.RegisterRoutes(group)
}

// auditRecorder adapts the optional audit service to the domain interface
// without handing services a typed nil.
func auditRecorder(cfg RouterConfig) domain.AuditRecorder {
	if cfg.Audit == nil {
		return nil
	}
	return cfg.Audit
}

// registerStaffRoutes registers staff management endpoints.
func registerStaffRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	service := staff.NewService(
		staff_repo.NewWorkerRepo(cfg.TxManager),
		staff_repo.NewDentistStaffRepo(cfg.TxManager),
		staff_repo.NewManagementStaffRepo(cfg.TxManager),
		staff_repo.NewAvailabilityRepo(cfg.TxManager),
		staff_repo.NewEmploymentRepo(cfg.TxManager),
		cfg.TxManager,
	)
	handler := handlers.NewStaffHandler(baseHandler, service)

	group := rg.Group("/staff")
	group.Use(middleware.RequireRole(RoleManagementStaff, RoleHR))
	handler.RegisterRoutes(group)
}

// registerBlogAdminRoutes registers the staff-only blog writes.
func registerBlogAdminRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := blog_repo.NewPostRepo(cfg.TxManager)
	service := blog.NewService(repo, cfg.TxManager)
	handler := handlers.NewPostHandler(baseHandler, service)

	posts := rg.Group("/posts")
	posts.Use(middleware.RequireRole(RoleManagementStaff))
	posts.POST("", handler.Create)
	posts.PUT("/:id", handler.Update)
}
