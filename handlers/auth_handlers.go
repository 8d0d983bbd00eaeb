// api/handlers/auth_handlers.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/api/models"
	"portfolio/api/utils"
)

type AuthHandlers struct{}

func NewAuthHandlers() *AuthHandlers {
	return &AuthHandlers{}
}

// Login checks the configured admin credentials and issues the session cookie.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	if !utils.CheckAdminCredentials(req.Username, req.Password) {
		zap.S().Warnf("Login failed for username %q", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}

	tokenString, err := utils.GenerateSessionToken(req.Username)
	if err != nil {
		zap.S().Errorf("Failed to generate session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.SetCookie(
		utils.SessionCookieName,
		tokenString,
		int(utils.SessionDuration/time.Second),
		"/",
		"",
		false,
		true,
	)

	zap.S().Infof("Admin logged in: %s", req.Username)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

// Logout clears the session cookie unconditionally.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetCookie(
		utils.SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}
