package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peoplehr/leave-system/docs"
	"github.com/peoplehr/leave-system/internal/api/handler"
	"github.com/peoplehr/leave-system/internal/api/middleware"
	"github.com/peoplehr/leave-system/internal/core/service"
	"github.com/peoplehr/leave-system/internal/infrastructure/config"
	mongodb "github.com/peoplehr/leave-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehr/leave-system/internal/infrastructure/db/redis"
	httphandlers "github.com/peoplehr/leave-system/internal/infrastructure/http/handlers"
	"github.com/peoplehr/leave-system/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier *notify.Dispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("leave_system"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	leaveRepo := mongodb.NewLeaveRepository(db)
	codeCache := redisdb.NewCodeCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	leaveService := service.NewLeaveService(leaveRepo, log)
	resetService := service.NewResetService(userRepo, codeCache, notifier, cfg.OTPTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	resetHandler := handler.NewResetHandler(resetService)
	profileHandler := handler.NewProfileHandler(authService)
	leaveHandler := handler.NewLeaveHandler(leaveService)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	v1.POST("/signup", authHandler.Signup)
	v1.POST("/login", authHandler.Login)
	v1.POST("/forget-password", resetHandler.ForgetPassword)
	v1.POST("/send-otp", resetHandler.ForgetPassword)
	v1.POST("/verify-otp", resetHandler.VerifyOTP)

	v1.GET("/profile", profileHandler.Get, authRequired)
	v1.PATCH("/profile", profileHandler.Update, authRequired)

	v1.POST("/leave", leaveHandler.Apply, authRequired)
	v1.GET("/leave", leaveHandler.List, authRequired)
	v1.GET("/leave/:id", leaveHandler.Get, authRequired)

	// --- Operational endpoints (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
