package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hustlehives/backend/internal/services"
	"github.com/hustlehives/backend/pkg/logger"
	"github.com/hustlehives/backend/pkg/response"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	service *services.ReviewService
	audit   *services.AuditService
}

func NewReviewHandler(db *gorm.DB, audit *services.AuditService) *ReviewHandler {
	return &ReviewHandler{
		service: services.NewReviewService(db),
		audit:   audit,
	}
}

// List handles GET /api/reviews. The body is a bare JSON array, most
// recent review first.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.service.List()
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reviews")
		response.Error(c, err)
		return
	}
	response.OK(c, reviews)
}

// Create handles POST /api/reviews. The created review is not returned;
// the public page refetches the listing after a successful submit.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, services.ErrFieldsRequired)
		return
	}

	if err := h.service.Submit(&req); err != nil {
		if _, ok := err.(*response.AppError); !ok {
			logger.Error().Err(err).Msg("failed to store review")
		}
		response.Error(c, err)
		return
	}

	response.Created(c)
}

// Delete handles DELETE /api/admin/reviews/:id (admin only, enforced by
// middleware). Deleting an id that does not exist still answers
// success: the endpoint is idempotent.
func (h *ReviewHandler) Delete(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		// A non-numeric id matches no review; same idempotent answer.
		h.audit.LogWarning("review.delete", fmt.Sprintf("delete with invalid id %q", idParam),
			c.ClientIP(), c.Request.UserAgent(), nil)
		response.Success(c)
		return
	}

	removed, err := h.service.Delete(uint(id))
	if err != nil {
		logger.Error().Err(err).Uint64("review_id", id).Msg("failed to delete review")
		response.Error(c, err)
		return
	}

	h.audit.LogInfo("review.delete", fmt.Sprintf("review %d deleted", id),
		c.ClientIP(), c.Request.UserAgent(), map[string]interface{}{"review_id": id, "removed": removed})

	response.Success(c)
}
