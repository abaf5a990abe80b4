package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hustlehives/backend/internal/config"
	"github.com/hustlehives/backend/internal/services"
	"github.com/hustlehives/backend/pkg/response"
)

type AuthHandler struct {
	authService *services.AdminAuthService
	audit       *services.AuditService
}

func NewAuthHandler(cfg *config.Config, audit *services.AuditService) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAdminAuthService(cfg),
		audit:       audit,
	}
}

// AuthService exposes the underlying verifier for middleware wiring.
func (h *AuthHandler) AuthService() *services.AdminAuthService {
	return h.authService
}

// Login handles POST /api/admin/login. A correct shared secret yields a
// signed session token; anything else is a 401 with no detail.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.audit.LogWarning("admin.login", "login rejected: malformed request",
			c.ClientIP(), c.Request.UserAgent(), nil)
		response.Error(c, services.ErrInvalidPassword)
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		h.audit.LogWarning("admin.login", "login rejected: wrong password",
			c.ClientIP(), c.Request.UserAgent(), nil)
		response.Error(c, err)
		return
	}

	h.audit.LogInfo("admin.login", "admin logged in",
		c.ClientIP(), c.Request.UserAgent(), nil)

	response.OK(c, services.LoginResponse{Token: token})
}
