package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/api/handler"
	"github.com/inventoryapi/inventory-system/internal/api/middleware"
	"github.com/inventoryapi/inventory-system/internal/core/policy"
	"github.com/inventoryapi/inventory-system/internal/core/service"
	"github.com/inventoryapi/inventory-system/internal/core/token"
	"github.com/inventoryapi/inventory-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, tokens *token.Manager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, tokens, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService, tokens)

	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Category routes ---
	categories := e.Group("/api/categories", authRequired)
	categories.GET("", categoryHandler.List, middleware.Authorize(policy.CategoryRead))
	categories.GET("/:id", categoryHandler.Get, middleware.Authorize(policy.CategoryRead))
	categories.POST("", categoryHandler.Create, middleware.Authorize(policy.CategoryCreate))
	categories.PUT("/:id", categoryHandler.Update, middleware.Authorize(policy.CategoryUpdate))
	categories.DELETE("/:id", categoryHandler.Delete, middleware.Authorize(policy.CategoryDelete))

	// --- Product routes ---
	products := e.Group("/api/products", authRequired)
	products.GET("", productHandler.List, middleware.Authorize(policy.ProductRead))
	products.GET("/:id", productHandler.Get, middleware.Authorize(policy.ProductRead))
	products.GET("/category/:categoryId", productHandler.ListByCategory, middleware.Authorize(policy.ProductRead))
	products.GET("/low-stock", productHandler.ListLowStock, middleware.Authorize(policy.ProductRead))
	products.POST("", productHandler.Create, middleware.Authorize(policy.ProductCreate))
	products.PUT("/:id", productHandler.Update, middleware.Authorize(policy.ProductUpdate))
	products.DELETE("/:id", productHandler.Delete, middleware.Authorize(policy.ProductDelete))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
