package cookie

import (
	"net/http"
	"time"

	"tipi-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminTokenCookieName = "admin_token"

func SetAdminTokenCookie(c *gin.Context, cfg config.AdminConfig, token string, expiry time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(
		AdminTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearAdminTokenCookie(c *gin.Context, cfg config.AdminConfig) {
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(
		AdminTokenCookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}
