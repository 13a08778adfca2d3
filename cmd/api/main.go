package main

import (
	"fmt"
	"os"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/password"
	"finboard/internal/router"
	"finboard/internal/services"
	"finboard/internal/validator"

	_ "finboard/internal/docs" // Import swagger docs
)

// @title           Finboard API
// @version         1.0
// @description     Finboard is a personal finance dashboard: accounts, categories, transactions and a period summary.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name auth_session
// @description Session cookie set by the sign-in and sign-up form actions.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	hasher := password.NewHasher(password.Params{
		MemoryKiB: appConfig.Argon2MemoryKiB,
		Time:      appConfig.Argon2Time,
		Threads:   appConfig.Argon2Threads,
	})
	sessionService := services.NewSessionService(db, services.SessionOptions{
		Secret:    []byte(appConfig.SessionSecret),
		ExpiresIn: appConfig.SessionExpiresIn,
		Now:       time.Now,
	})

	if purged, err := sessionService.DeleteExpiredSessions(""); err != nil {
		log.Warnf("failed to purge expired sessions: %v", err)
	} else if purged > 0 {
		log.Infof("Purged %d expired session(s)", purged)
	}

	engine := router.New(router.Deps{
		Users:        services.NewUserService(db, hasher),
		Sessions:     sessionService,
		Accounts:     services.NewAccountService(db),
		Categories:   services.NewCategoryService(db),
		Transactions: services.NewTransactionService(db, time.Now),
		Summary:      services.NewSummaryService(db, time.Now),
		Audit:        services.NewAuditService(db),
		Cookie: middleware.SessionCookie{
			Name:   appConfig.SessionCookieName,
			Secure: appConfig.IsProduction(),
		},
		Swagger: !appConfig.IsProduction(),
	})

	log.Infof("Starting Finboard server on port %s", appConfig.Port)
	if !appConfig.IsProduction() {
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	}
	return engine.Run(":" + appConfig.Port)
}
