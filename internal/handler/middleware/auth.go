package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"glowscore/internal/usecase"

	"github.com/gin-gonic/gin"
)

const adminSecretHeader = "X-Admin-Secret"

type AdminMiddleware struct {
	auth usecase.AdminAuth
}

func NewAdminMiddleware(auth usecase.AdminAuth) *AdminMiddleware {
	return &AdminMiddleware{auth: auth}
}

// RequireAdmin accepts either the raw shared secret in X-Admin-Secret or a
// bearer token previously issued by the login endpoint.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret := c.GetHeader(adminSecretHeader); secret != "" {
			if m.auth.VerifySecret(secret) {
				c.Next()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin secret",
			})
			c.Abort()
			return
		}

		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin credentials required",
			})
			c.Abort()
			return
		}

		if err := m.auth.VerifyToken(token); err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
