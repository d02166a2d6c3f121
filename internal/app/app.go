package app

import (
	"fmt"
	"time"

	"github.com/SujayAnishetti/ClinicalTrials/database"
	"github.com/SujayAnishetti/ClinicalTrials/internal/auth"
	"github.com/SujayAnishetti/ClinicalTrials/internal/config"
	"github.com/SujayAnishetti/ClinicalTrials/internal/email"
	"github.com/SujayAnishetti/ClinicalTrials/internal/handlers"
	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"
	"github.com/SujayAnishetti/ClinicalTrials/internal/middleware"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/registry"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
	"github.com/SujayAnishetti/ClinicalTrials/internal/routes"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected and migrated")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	submissionRepo := repositories.NewSubmissionRepository(gormDB)
	adminRepo := repositories.NewAdminUserRepository(gormDB)
	trialRepo := repositories.NewTrialRepository(gormDB)

	renderer := email.NewTemplateManager()

	// Start from the defaults; the config file has no SMTP timeout knob.
	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS
	emailProvider := email.NewSMTPProvider(smtpCfg, renderer)

	registryClient := registry.NewClient(registry.Config{
		BaseURL:           cfg.Registry.BaseURL,
		PageSize:          cfg.Registry.PageSize,
		Sponsor:           cfg.Registry.Sponsor,
		InterventionQuery: cfg.Registry.InterventionQuery,
		RetryMax:          cfg.Registry.RetryMax,
		Timeout:           time.Duration(cfg.Registry.TimeoutSeconds) * time.Second,
	})

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	return &services.ServiceContainer{
		SubmissionService: services.NewSubmissionService(submissionRepo),
		AuthService:       services.NewAuthService(adminRepo, tokens),
		EmailService:      services.NewEmailService(submissionRepo, emailProvider, renderer),
		TrialService:      services.NewTrialService(trialRepo, registryClient),
	}
}

func initializeHandlers(container *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		InterestHandler:    handlers.NewInterestHandler(base, container.SubmissionService),
		EligibilityHandler: handlers.NewEligibilityHandler(base, container.SubmissionService),
		TrialHandler:       handlers.NewTrialHandler(base, container.TrialService),
		AdminHandler: handlers.NewAdminHandler(
			base,
			container.SubmissionService,
			container.EmailService,
			container.TrialService,
			container.AuthService,
			tokens,
		),
		HealthHandler: handlers.NewHealthHandler(base),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}

// seedFirstAdmin creates the initial admin account when none exists.
// Skipped entirely when seed credentials are not configured.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("First admin credentials not configured, skipping seed")
		return nil
	}

	adminRepo := repositories.NewAdminUserRepository(gormDB)

	count, err := adminRepo.CountAll()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := auth.ValidatePassword(cfg.FirstAdminPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	if err := adminRepo.Create(&models.AdminUser{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.AdminRoleAdmin,
	}); err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", cfg.FirstAdminEmail)
	return nil
}
