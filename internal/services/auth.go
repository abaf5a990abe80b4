package services

import (
	"github.com/hustlehives/backend/internal/config"
	"github.com/hustlehives/backend/internal/utils"
	"github.com/hustlehives/backend/pkg/response"
)

// Auth errors. The messages are part of the public API contract and
// deliberately say nothing about which check failed.
var (
	ErrInvalidPassword = response.NewAuth("Invalid password")
	ErrUnauthorized    = response.NewAuth("Unauthorized")
)

// AdminAuthService authenticates the single admin identity. There is no
// user table: the shared secret and the static token come from
// configuration, fixed at startup.
type AdminAuthService struct {
	admin *config.AdminConfig
	jwt   *config.JWTConfig
}

func NewAdminAuthService(cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		admin: &cfg.Admin,
		jwt:   &cfg.JWT,
	}
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the shared secret for a signed session token.
func (s *AdminAuthService) Login(password string) (string, error) {
	if !s.checkPassword(password) {
		return "", ErrInvalidPassword
	}
	return utils.GenerateToken("admin", "admin", s.jwt.ExpireHour)
}

func (s *AdminAuthService) checkPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		return utils.CheckPassword(password, s.admin.PasswordHash)
	}
	if s.admin.Password == "" {
		return false
	}
	return utils.SecureCompare(password, s.admin.Password)
}

// VerifyToken accepts either a valid session token or the configured
// static admin token. The static token never expires; it is what legacy
// admin clients present.
func (s *AdminAuthService) VerifyToken(token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if _, err := utils.ParseToken(token); err == nil {
		return nil
	}
	if s.admin.Token != "" && utils.SecureCompare(token, s.admin.Token) {
		return nil
	}
	return ErrUnauthorized
}
