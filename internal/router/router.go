package router

import (
	"time"

	"insygth/internal/config"
	"insygth/internal/handler"
	"insygth/internal/infra"
	"insygth/internal/middleware"
	"insygth/internal/repository"
	"insygth/internal/service"
	"insygth/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	renderer := infra.NewInvoiceRenderer(cfg.BusinessName)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	productRepo := repository.NewProductRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	receivableRepo := repository.NewReceivableRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	staffRepo := repository.NewStaffRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Worker dispatcher — injected into the notification service so email
	// copies are delivered async by the worker pool.
	dispatcher := worker.NewDispatcher(rdb)
	notificationSvc := service.NewNotificationService(notificationRepo, dispatcher, cfg.NotifyEmail)

	authSvc := service.NewAuthService(userRepo, staffRepo, notificationSvc, cfg)
	materialSvc := service.NewMaterialService(materialRepo, notificationSvc)
	productSvc := service.NewProductService(productRepo)
	recipeSvc := service.NewRecipeService(recipeRepo, productRepo, materialRepo, notificationSvc)
	productionSvc := service.NewProductionService(productionRepo, recipeRepo, productRepo, notificationSvc)
	salesSvc := service.NewSalesService(invoiceRepo, receivableRepo, productRepo, renderer, notificationSvc)
	expenseSvc := service.NewExpenseService(expenseRepo)
	staffSvc := service.NewStaffService(staffRepo, userRepo, notificationSvc)
	reportSvc := service.NewReportService(invoiceRepo, receivableRepo, expenseRepo, productionRepo, materialRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	materialsH := handler.NewMaterialsHandler(materialSvc)
	productsH := handler.NewProductsHandler(productSvc)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	productionH := handler.NewProductionHandler(productionSvc)
	invoicesH := handler.NewInvoicesHandler(salesSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)
	reportsH := handler.NewReportsHandler(reportSvc, infra.NewInventoryExporter(materialRepo))

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/owner-signin", middleware.LoginRateLimiter(), authH.OwnerSignin)
		auth.POST("/staff-signin", middleware.LoginRateLimiter(), authH.StaffSignin)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — owner and staff unless restricted per-group
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		materials := api.Group("/materials")
		{
			materials.POST("", materialsH.Create)
			materials.GET("", materialsH.List)
			materials.GET("/:id", materialsH.Get)
			materials.PATCH("/:id", materialsH.Update)
			materials.DELETE("/:id", materialsH.Delete)
		}

		products := api.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.GET("/:id/recipe", recipesH.GetByProduct)
		}

		recipes := api.Group("/recipes")
		{
			recipes.POST("", recipesH.Create)
			recipes.GET("", recipesH.List)
			recipes.GET("/:id", recipesH.Get)
			recipes.PUT("/:id", recipesH.Update)
			recipes.POST("/:id/refresh-cost", recipesH.RefreshCost)
			recipes.DELETE("/:id", recipesH.Delete)
		}

		production := api.Group("/production")
		{
			production.POST("", productionH.Create)
			production.GET("", productionH.List)
			production.GET("/:id", productionH.Get)
			production.PATCH("/:id/status", productionH.UpdateStatus)
		}

		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("", invoicesH.List)
			invoices.GET("/:id", invoicesH.Get)
			invoices.PATCH("/:id/payment", invoicesH.MarkPaid)
			invoices.GET("/:id/pdf", invoicesH.DownloadPDF)
		}

		api.GET("/receivables", invoicesH.ListReceivables)
		api.GET("/receivables/summary", invoicesH.ReceivablesSummary)

		expenses := api.Group("/expenses")
		{
			expenses.POST("", expensesH.Create)
			expenses.GET("", expensesH.List)
			expenses.GET("/summary", expensesH.Summary)
		}

		// Staff account review — owner only
		staff := api.Group("/staff-requests", middleware.RequireRole("owner"))
		{
			staff.GET("", staffH.List)
			staff.POST("/:id/approve", staffH.Approve)
			staff.POST("/:id/reject", staffH.Reject)
		}

		notifications := api.Group("/notifications")
		{
			notifications.POST("", notificationsH.Create)
			notifications.GET("", notificationsH.List)
			notifications.PATCH("/:id", notificationsH.SetRead)
			notifications.POST("/read-all", notificationsH.MarkAllRead)
		}

		// Business reports — owner only
		reports := api.Group("/reports", middleware.RequireRole("owner"))
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/inventory.xlsx", reportsH.InventoryExport)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
