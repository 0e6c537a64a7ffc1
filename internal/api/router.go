package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/perkhub/rewards-system/internal/api/handler"
	"github.com/perkhub/rewards-system/internal/api/middleware"
	"github.com/perkhub/rewards-system/internal/core/service"
	mongodb "github.com/perkhub/rewards-system/internal/infrastructure/db/mongo"
	redisdb "github.com/perkhub/rewards-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the stats cache is then disabled and Stats always hits
// MongoDB.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rewards"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	rewardRepo := mongodb.NewRewardRepository(db)
	claimRepo := mongodb.NewClaimRepository(db)
	logRepo := mongodb.NewLogRepository(db)

	// Assigning a typed nil *StatsCache to the interface would defeat the
	// nil checks in the service, so only wrap when Redis is configured.
	var cache service.StatsCache
	if rdb != nil {
		cache = redisdb.NewStatsCache(rdb)
	}

	// --- Services ---
	auditService := service.NewAuditService(logRepo, userRepo)
	authService := service.NewAuthService(userRepo, auditService, jwtSecret, 24*time.Hour, log)
	rewardService := service.NewRewardService(rewardRepo, log)
	claimService := service.NewClaimService(userRepo, rewardRepo, claimRepo, auditService, cache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	rewardHandler := handler.NewRewardHandler(rewardService)
	claimHandler := handler.NewClaimHandler(claimService)
	adminHandler := handler.NewAdminHandler(claimService, rewardService, auditService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Public catalog reads ---
	e.GET("/v1/rewards", rewardHandler.List)
	e.GET("/v1/rewards/:id", rewardHandler.Get)

	// --- Authenticated user routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/me", authHandler.Me)
	v1.POST("/claims", claimHandler.Create)
	v1.GET("/claims", claimHandler.ListMine)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RequireAdmin())
	admin.GET("/claims", adminHandler.ListClaims)
	admin.PATCH("/claims/:id", adminHandler.UpdateClaimStatus)
	admin.POST("/rewards", adminHandler.CreateReward)
	admin.GET("/logs", adminHandler.ListLogs)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
