package api

import (
	"errors"
	"net/http"

	reqdto "tipi-reserve/internal/handler/dto/request"
	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/pkg/cookie"
	"tipi-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase commands.AuthCommands
	adminCfg    config.AdminConfig
}

func NewAuthHandler(authUseCase commands.AuthCommands, adminCfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		adminCfg:    adminCfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin PIN for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid PIN",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetAdminTokenCookie(c, h.adminCfg, token, h.adminCfg.SessionDuration)
	c.Status(http.StatusNoContent)
}

// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminTokenCookie(c, h.adminCfg)
	c.Status(http.StatusNoContent)
}
