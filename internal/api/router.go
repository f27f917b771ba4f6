package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/luxurydeals/catalog-console/internal/api/handler"
	"github.com/luxurydeals/catalog-console/internal/api/middleware"
	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// RouterConfig carries the wired services the router exposes over HTTP.
type RouterConfig struct {
	Auth         ports.AuthService
	Catalog      ports.CatalogService
	Categories   ports.CategoryStore
	Identity     ports.IdentityStore
	Store        ports.Store
	StoreBackend string
	JWTSecret    string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	listingHandler := handler.NewListingHandler(cfg.Catalog, cfg.Categories)
	categoryHandler := handler.NewCategoryHandler(cfg.Categories)
	userHandler := handler.NewUserHandler(cfg.Identity)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Store, cfg.StoreBackend)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Session routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Storefront (public read surface) ---
	e.GET("/v1/listings", listingHandler.List)
	e.GET("/v1/categories/summary", listingHandler.Summary)

	// --- Catalog editing ---
	e.POST("/v1/listings", listingHandler.Create, auth, middleware.Permission(domain.PermEdit))
	e.PUT("/v1/listings/:id", listingHandler.Update, auth, middleware.Permission(domain.PermEdit))
	e.DELETE("/v1/listings/:id", listingHandler.Delete, auth, middleware.Permission(domain.PermDelete))
	e.GET("/v1/export", listingHandler.Export, auth, middleware.Permission(domain.PermEdit))

	// --- Admin console ---
	categories := e.Group("/v1/admin/categories", auth, middleware.Permission(domain.PermManageCategories))
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	users := e.Group("/v1/admin/users", auth, middleware.Permission(domain.PermManageUsers))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
