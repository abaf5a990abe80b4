package services

import (
	"encoding/json"
	"time"

	"github.com/hustlehives/backend/internal/models"
	"github.com/hustlehives/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// AuditService persists admin-facing events (login attempts, deletions)
// and prunes old entries on a nightly schedule.
type AuditService struct {
	db            *gorm.DB
	cronScheduler *cron.Cron
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) LogInfo(action, message, ip, userAgent string, extra interface{}) {
	s.write("info", action, message, ip, userAgent, extra)
}

func (s *AuditService) LogWarning(action, message, ip, userAgent string, extra interface{}) {
	s.write("warning", action, message, ip, userAgent, extra)
}

func (s *AuditService) write(level, action, message, ip, userAgent string, extra interface{}) {
	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.AuditLog{
		Level:     level,
		Action:    action,
		Message:   message,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Error().Err(err).Str("action", action).Msg("failed to write audit log")
	}
}

type AuditListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Level    string `form:"level"`
	Action   string `form:"action"`
	Search   string `form:"search"`
}

type AuditListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Items    []models.AuditLog `json:"items"`
}

func (s *AuditService) List(req *AuditListRequest) (*AuditListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	logs := make([]models.AuditLog, 0)
	var total int64

	query := s.db.Model(&models.AuditLog{})
	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Action != "" {
		query = query.Where("action = ?", req.Action)
	}
	if req.Search != "" {
		query = query.Where("message LIKE ?", "%"+req.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	return &AuditListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

// CleanupBefore deletes audit entries created before the cutoff and
// returns how many rows were removed.
func (s *AuditService) CleanupBefore(cutoff time.Time) (int64, error) {
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	return result.RowsAffected, result.Error
}

// StartRetentionScheduler prunes entries older than retentionDays every
// night at 03:00.
func (s *AuditService) StartRetentionScheduler(retentionDays int) {
	s.cronScheduler = cron.New()

	_, err := s.cronScheduler.AddFunc("0 3 * * *", func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		removed, err := s.CleanupBefore(cutoff)
		if err != nil {
			logger.Error().Err(err).Msg("audit log cleanup failed")
			return
		}
		logger.Info().Int64("removed", removed).Int("retention_days", retentionDays).Msg("audit log cleanup done")
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to schedule audit log cleanup")
		return
	}

	s.cronScheduler.Start()
	logger.Info().Msg("audit retention scheduler started")
}

func (s *AuditService) StopRetentionScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}
