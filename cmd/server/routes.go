package main

import (
	"github.com/gin-gonic/gin"
	"github.com/hustlehives/backend/internal/middleware"
	"github.com/hustlehives/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID(), logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter shared by the public write endpoints
	publicLimiter := middleware.NewRateLimiter(svc.cfg.RateLimit.RPS, svc.cfg.RateLimit.Burst)

	// Health check
	r.GET("/health", svc.healthHandler.Check)

	// API routes
	api := r.Group("/api")
	{
		// Public review routes
		api.GET("/reviews", svc.reviewHandler.List)
		api.POST("/reviews", publicLimiter.Middleware(), svc.reviewHandler.Create)

		// Admin login (public, rate limited against brute force)
		api.POST("/admin/login", publicLimiter.Middleware(), svc.authHandler.Login)

		// Admin-only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired(svc.authHandler.AuthService()))
		{
			admin.DELETE("/reviews/:id", svc.reviewHandler.Delete)
			admin.GET("/logs", svc.auditLogHandler.List)
		}
	}
}
