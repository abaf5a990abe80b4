package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier reports whether a presented bearer token authorizes
// admin access. Satisfied by services.AdminAuthService.
type TokenVerifier interface {
	VerifyToken(token string) error
}

// AdminRequired is the single authorization check applied to every
// admin-only route. Any missing, malformed, or invalid credential gets
// the same 401 body so nothing leaks about which check failed.
func AdminRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if err := verifier.VerifyToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer
// <token>" header, returning "" for anything else.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
