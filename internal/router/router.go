package router

import (
	"time"

	"github.com/amine-amroussi/gestion-de-stock/internal/config"
	"github.com/amine-amroussi/gestion-de-stock/internal/handler"
	"github.com/amine-amroussi/gestion-de-stock/internal/middleware"
	"github.com/amine-amroussi/gestion-de-stock/internal/repository"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"
	"github.com/amine-amroussi/gestion-de-stock/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine along with
// the trip service, which the report worker in cmd/server also consumes.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, service.TripService) {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	boxRepo := repository.NewBoxRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	truckRepo := repository.NewTruckRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	tripRepo := repository.NewTripRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	wasteRepo := repository.NewWasteRepository(db)
	chargeRepo := repository.NewChargeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	ledgerSvc := service.NewLedgerService(productRepo, boxRepo, wasteRepo, movementRepo)

	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, rdb)
	boxSvc := service.NewBoxService(boxRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	truckSvc := service.NewTruckService(truckRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	wasteSvc := service.NewWasteService(wasteRepo, productRepo, ledgerSvc)
	chargeSvc := service.NewChargeService(chargeRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	tripSvc := service.NewTripService(tripRepo, productRepo, truckRepo, employeeRepo, chargeRepo, ledgerSvc, dispatcher)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, ledgerSvc)
	paymentSvc := service.NewPaymentService(paymentRepo, employeeRepo, tripRepo)
	revenueSvc := service.NewRevenueService(tripRepo, purchaseRepo, paymentRepo, chargeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	tripsH := handler.NewTripsHandler(tripSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	productsH := handler.NewProductsHandler(productSvc)
	boxesH := handler.NewBoxesHandler(boxSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	trucksH := handler.NewTrucksHandler(truckSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	wastesH := handler.NewWastesHandler(wasteSvc, ledgerSvc)
	chargesH := handler.NewChargesHandler(chargeSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	revenueH := handler.NewRevenueHandler(revenueSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required, used by the sales floor display
	r.GET("/v1/product/:id/price", productsH.GetPrice)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Trips — the heart of the operation; manager or admin
		trips := v1.Group("/trip", middleware.RequireRole("admin", "manager"))
		{
			trips.POST("/start", tripsH.Start)
			trips.PATCH("/:id", tripsH.Finish)
			trips.POST("/transfer", tripsH.Transfer)
			trips.POST("/emptyTruck/:matricule", tripsH.EmptyTruck)
			trips.GET("", tripsH.ListClosed)
			trips.GET("/active", tripsH.ListActive)
			trips.GET("/lastTruck/:matricule", tripsH.LastTruck)
			trips.GET("/invoice/:id", tripsH.Invoice)
			trips.GET("/:id", tripsH.GetByID)
		}

		purchases := v1.Group("/purchase", middleware.RequireRole("admin", "manager"))
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List)
			purchases.GET("/:id", purchasesH.GetByID)
		}

		// Catalog reads — any authenticated role
		v1.GET("/product", middleware.RequireRole("admin", "manager"), productsH.List)
		v1.GET("/product/:id", middleware.RequireRole("admin", "manager"), productsH.GetByID)
		// Catalog writes — admin only
		products := v1.Group("/product", middleware.RequireRole("admin"))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		v1.GET("/box", middleware.RequireRole("admin", "manager"), boxesH.List)
		v1.GET("/box/:id", middleware.RequireRole("admin", "manager"), boxesH.GetByID)
		boxes := v1.Group("/box", middleware.RequireRole("admin"))
		{
			boxes.POST("", boxesH.Create)
			boxes.PUT("/:id", boxesH.Update)
			boxes.DELETE("/:id", boxesH.Delete)
		}

		suppliers := v1.Group("/fournisseur", middleware.RequireRole("admin", "manager"))
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.GetByID)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		trucks := v1.Group("/camion", middleware.RequireRole("admin"))
		{
			trucks.POST("", trucksH.Create)
			trucks.GET("", trucksH.List)
			trucks.GET("/:matricule", trucksH.GetByMatricule)
			trucks.PUT("/:matricule", trucksH.Update)
			trucks.DELETE("/:matricule", trucksH.Delete)
		}

		employees := v1.Group("/employe", middleware.RequireRole("admin"))
		{
			employees.POST("", employeesH.Create)
			employees.GET("", employeesH.List)
			employees.GET("/:cin", employeesH.GetByCIN)
			employees.PUT("/:cin", employeesH.Update)
			employees.DELETE("/:cin", employeesH.Delete)
		}

		wastes := v1.Group("/waste", middleware.RequireRole("admin", "manager"))
		{
			wastes.POST("", wastesH.Create)
			wastes.GET("", wastesH.List)
			wastes.GET("/:id", wastesH.GetByProduct)
		}

		// Stock movement audit trail
		v1.GET("/inventory/movements", middleware.RequireRole("admin", "manager"), wastesH.ListMovements)

		charges := v1.Group("/charge", middleware.RequireRole("admin", "manager"))
		{
			charges.POST("", chargesH.Create)
			charges.GET("", chargesH.List)
			charges.GET("/:id", chargesH.GetByID)
			charges.PUT("/:id", chargesH.Update)
		}

		payments := v1.Group("/payment", middleware.RequireRole("admin"))
		{
			payments.POST("", paymentsH.Create)
			payments.GET("", paymentsH.List)
			payments.GET("/:id", paymentsH.GetByID)
			payments.PATCH("/:id/status", paymentsH.UpdateStatus)
		}

		v1.GET("/revenue/summary", middleware.RequireRole("admin"), revenueH.Summary)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, tripSvc
}
