package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/audit"
	"github.com/berberbook/saloniumpro/internal/config"
	"github.com/berberbook/saloniumpro/internal/handlers"
	infraRepo "github.com/berberbook/saloniumpro/internal/infra/repository"
	"github.com/berberbook/saloniumpro/internal/middleware"
	ucPayment "github.com/berberbook/saloniumpro/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	saleRepo := infraRepo.NewSaleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES - CHECKOUT
	// ======================================================
	processPaymentUC := ucPayment.NewProcessAppointmentPayment(
		saleRepo,
		auditDispatcher,
	)

	createProductSaleUC := ucPayment.NewCreateProductSale(
		saleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	customerHandler := handlers.NewCustomerHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		processPaymentUC,
		auditDispatcher,
	)

	saleHandler := handlers.NewSaleHandler(
		db,
		createProductSaleUC,
		auditDispatcher,
	)

	dashboardHandler := handlers.NewDashboardHandler(db)
	reportHandler := handlers.NewReportHandler(db)
	dbAdminHandler := handlers.NewDBAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SECURED API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.GET("/products/:id", productHandler.Get)
			secured.PUT("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/payment", appointmentHandler.Pay)

			// ------------------------------
			// SALES
			// ------------------------------
			secured.GET("/sales", saleHandler.List)
			secured.POST("/sales", saleHandler.Create)
			secured.GET("/sales/:id", saleHandler.Get)
			secured.DELETE("/sales/:id", saleHandler.Delete)

			secured.GET("/dashboard", dashboardHandler.Stats)
			secured.GET("/reports", reportHandler.Get)

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// DIAGNOSTICS
			// ------------------------------
			secured.GET("/db-check", dbAdminHandler.Check)
			secured.GET("/db-status", dbAdminHandler.Status)
			secured.GET("/db-init", dbAdminHandler.Init)
			secured.GET("/db-reset", dbAdminHandler.Reset)
		}
	}
}
