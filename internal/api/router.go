package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/accesskeep/user-management-api/docs"
	"github.com/accesskeep/user-management-api/internal/api/handler"
	"github.com/accesskeep/user-management-api/internal/api/middleware"
	"github.com/accesskeep/user-management-api/internal/core/domain"
	"github.com/accesskeep/user-management-api/internal/core/service"
	"github.com/accesskeep/user-management-api/internal/infrastructure/config"
	mongodb "github.com/accesskeep/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/accesskeep/user-management-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(accountRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := service.NewAccountService(accountRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)

	authn := middleware.Auth(cfg.JWTSecret, accountRepo)
	superadminOnly := middleware.RBAC(domain.RoleSuperadmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public ---
	e.POST("/login", authHandler.Login)

	// --- Superadmin ---
	e.POST("/add-admin", accountHandler.CreateAdmin, authn, superadminOnly)
	e.PUT("/update-admin/:id", accountHandler.UpdateAdmin, authn, superadminOnly)
	e.DELETE("/delete-admin/:id", accountHandler.DeleteAdmin, authn, superadminOnly)
	e.GET("/getAdmins", accountHandler.Admins, authn, superadminOnly)

	// --- Admin ---
	e.POST("/add-user", accountHandler.CreateUser, authn, adminOnly)
	e.GET("/my-users", accountHandler.MyUsers, authn, adminOnly)
	e.PUT("/update-user/:id", accountHandler.UpdateUser, authn, adminOnly,
		middleware.RestrictPeerAdminUpdate(accountRepo))

	// --- Shared ---
	e.GET("/getUsers", accountHandler.List, authn,
		middleware.RBAC(domain.RoleAdmin, domain.RoleSuperadmin))

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
