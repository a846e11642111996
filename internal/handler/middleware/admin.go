package middleware

import (
	"log/slog"
	"net/http"

	"tipi-reserve/internal/pkg/cookie"
	"tipi-reserve/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "admin"

type AdminMiddleware struct {
	jwtService *jwt.Service
}

func NewAdminMiddleware(jwtService *jwt.Service) *AdminMiddleware {
	return &AdminMiddleware{
		jwtService: jwtService,
	}
}

// RequireAdmin gates every administrative route behind the session cookie
// issued at login. There is a single admin identity; the token carries no
// user claims beyond its validity window.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin session required",
			})
			c.Abort()
			return
		}

		if err := m.jwtService.ValidateAdminToken(token); err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}
