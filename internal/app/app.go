package app

import (
	"fmt"

	"parttime_backend/database"
	"parttime_backend/internal/config"
	"parttime_backend/internal/email"
	"parttime_backend/internal/handlers"
	"parttime_backend/internal/logger"
	"parttime_backend/internal/middleware"
	"parttime_backend/internal/repositories"
	"parttime_backend/internal/routes"
	"parttime_backend/internal/services"
	"parttime_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the application: config, logging, database, router, listen.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Expired refresh tokens accumulate between restarts; sweep them here.
	if err := repositories.NewUserRepository().CleanExpiredRefreshTokens(db); err != nil {
		logger.Warn("Failed to clean expired refresh tokens", "error", err)
	}

	engine := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "addr", addr, "env", cfg.Server.Env)
	if err := engine.Run(addr); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

// SetupRouter wires services, handlers and middleware onto a gin engine.
// The test harness calls this directly with its own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	svc := initializeServices(cfg)
	appHandlers := initializeHandlers(svc)
	return initializeGinRouter(cfg, db, appHandlers)
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	v := validator.New()

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	var provider email.Provider
	if cfg.Email.Enabled {
		provider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		provider = &email.NoopProvider{}
	}
	emailService := services.NewEmailService(provider)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, v),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, applicationRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo, emailService),
		EmailService:       emailService,
	}
}

func initializeHandlers(svc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, svc.AuthService),
		User:        handlers.NewUserHandler(base, svc.UserService, svc.JobService, svc.ApplicationService),
		Job:         handlers.NewJobHandler(base, svc.JobService, svc.ApplicationService),
		Application: handlers.NewApplicationHandler(base, svc.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, appHandlers *handlers.AppHandlers) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(engine, appHandlers)
	return engine
}
