package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/foodmenu/menu-system/docs"
	"github.com/foodmenu/menu-system/internal/api/handler"
	"github.com/foodmenu/menu-system/internal/api/middleware"
	"github.com/foodmenu/menu-system/internal/core/domain"
	"github.com/foodmenu/menu-system/internal/core/ports"
	"github.com/foodmenu/menu-system/internal/core/service"
	"github.com/foodmenu/menu-system/internal/infrastructure/config"
	mongodb "github.com/foodmenu/menu-system/internal/infrastructure/db/mongo"
	redisdb "github.com/foodmenu/menu-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. uploads must already have its storage root prepared.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploads ports.FileStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("foodmenu"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	menuRepo := mongodb.NewMenuRepository(db)
	menuService := service.NewMenuService(menuRepo, log)
	menuHandler := handler.NewMenuHandler(menuService, uploads)

	// Menu writes are only gated when the deployment asks for it; the
	// original application ships with open writes.
	var writeGuard []echo.MiddlewareFunc
	if cfg.ProtectMenuWrites {
		writeGuard = []echo.MiddlewareFunc{
			middleware.Auth(authService),
			middleware.RBAC(domain.RoleUser, domain.RoleAdmin),
		}
	}

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	// --- Menu routes ---
	menu := e.Group("/api/menu")
	menu.GET("", menuHandler.List)
	menu.POST("", menuHandler.Create, writeGuard...)
	menu.DELETE("/:id", menuHandler.Delete, writeGuard...)
	menu.POST("/upload", menuHandler.Upload, writeGuard...)

	// --- Static retrieval of uploaded files ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
