package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/database"
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/repositories/memory"
	"jobtracker_backend/internal/routes"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	_ "jobtracker_backend/docs"
)

// Dependencies are the collaborators SetupRouter wires together. Nil
// repositories are filled from DB, or from the memory store when DB is nil.
type Dependencies struct {
	DB              *gorm.DB
	Verifier        auth.Verifier
	ApplicationRepo repositories.ApplicationRepository
	ReminderRepo    repositories.ReminderRepository
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if gormDB != nil {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		if n, err := database.MigrateLegacyStatuses(context.Background(), gormDB); err != nil {
			logger.Fatal("Failed to migrate legacy statuses", "error", err)
		} else if n > 0 {
			logger.Info("Legacy statuses migrated", "rows", n)
		}
		logger.Info("Database connected")
	} else {
		logger.Warn("Using the in-memory store; data is lost on restart")
	}

	verifier, err := NewVerifier(cfg)
	if err != nil {
		logger.Fatal("Failed to configure identity verification", "error", err)
	}

	ginRouter := SetupRouter(cfg, Dependencies{DB: gormDB, Verifier: verifier})

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         address,
		Handler:      ginRouter,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	if gormDB != nil {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// NewVerifier builds the identity verifier from config: the local JWT check
// when a signing secret is set, the provider endpoint when a URL is set, both
// chained when both are.
func NewVerifier(cfg *config.Config) (auth.Verifier, error) {
	var chain []auth.Verifier
	if cfg.Auth.JWTSecret != "" {
		chain = append(chain, auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience))
	}
	if cfg.Auth.VerifyURL != "" {
		timeout := time.Duration(cfg.Auth.VerifyTimeout) * time.Second
		chain = append(chain, auth.NewRemoteVerifier(cfg.Auth.VerifyURL, timeout))
	}

	switch len(chain) {
	case 0:
		return nil, auth.ErrNoVerifier
	case 1:
		return chain[0], nil
	default:
		return auth.NewChainVerifier(chain...), nil
	}
}

func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	m := metrics.New()

	// 1. Services
	serviceContainer := initializeServices(deps)

	// 2. Handlers
	appHandlers := initializeHandlers(serviceContainer, deps.DB)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, m)

	protect := []gin.HandlerFunc{middleware.AuthMiddleware(deps.Verifier, m)}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		protect = append(protect, middleware.RateLimit(limiter))
	}

	// 4. Routes
	routes.RegisterRoutes(ginRouter, appHandlers, protect...)
	routes.RegisterMetricsRoute(ginRouter, m.Handler())
	if cfg.Swagger.Enabled {
		routes.RegisterSwaggerRoutes(ginRouter)
	}

	return ginRouter
}

func initializeServices(deps Dependencies) *services.ServiceContainer {
	applicationRepo := deps.ApplicationRepo
	reminderRepo := deps.ReminderRepo

	if deps.DB != nil {
		if applicationRepo == nil {
			applicationRepo = repositories.NewApplicationRepository(deps.DB)
		}
		if reminderRepo == nil {
			reminderRepo = repositories.NewReminderRepository(deps.DB)
		}
	} else {
		if applicationRepo == nil {
			applicationRepo = memory.NewApplicationRepository()
		}
		if reminderRepo == nil {
			reminderRepo = memory.NewReminderRepository()
		}
	}

	v := validator.New()
	return &services.ServiceContainer{
		ApplicationService: services.NewApplicationService(applicationRepo, v),
		ReminderService:    services.NewReminderService(reminderRepo, v),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, db *gorm.DB) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		ReminderHandler:    handlers.NewReminderHandler(baseHandler, serviceContainer.ReminderService),
		HealthHandler:      handlers.NewHealthHandler(db),
	}
}

func initializeGinRouter(cfg *config.Config, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(m.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
