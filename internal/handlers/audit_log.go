package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hustlehives/backend/internal/services"
	"github.com/hustlehives/backend/pkg/logger"
	"github.com/hustlehives/backend/pkg/response"
)

type AuditLogHandler struct {
	service *services.AuditService
}

func NewAuditLogHandler(service *services.AuditService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// List handles GET /api/admin/logs with optional paging and filters
// (page, page_size, level, action, search).
func (h *AuditLogHandler) List(c *gin.Context) {
	var req services.AuditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(&req)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list audit logs")
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}
