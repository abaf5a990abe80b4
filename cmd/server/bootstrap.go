package main

import (
	"github.com/hustlehives/backend/internal/config"
	"github.com/hustlehives/backend/internal/handlers"
	"github.com/hustlehives/backend/internal/models"
	"github.com/hustlehives/backend/internal/services"
	"github.com/hustlehives/backend/internal/utils"
	"github.com/hustlehives/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg             *config.Config
	auditService    *services.AuditService
	authHandler     *handlers.AuthHandler
	reviewHandler   *handlers.ReviewHandler
	auditLogHandler *handlers.AuditLogHandler
	healthHandler   *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	auditService := services.NewAuditService(models.GetDB())
	auditService.StartRetentionScheduler(cfg.Audit.RetentionDays)

	authHandler := handlers.NewAuthHandler(cfg, auditService)

	return &appServices{
		cfg:             cfg,
		auditService:    auditService,
		authHandler:     authHandler,
		reviewHandler:   handlers.NewReviewHandler(models.GetDB(), auditService),
		auditLogHandler: handlers.NewAuditLogHandler(auditService),
		healthHandler:   handlers.NewHealthHandler(models.GetDB()),
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.auditService.StopRetentionScheduler()
	logger.Info().Msg("Schedulers stopped")
}
