// controllers/auth.go
package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"victorianails-backend/utils"
)

// AuthController is the login gate: one fixed credential pair unlocks
// the dashboard. There is no user table and no registration.
type AuthController struct {
	Username     string
	PasswordHash string
	AdminName    string
}

// NewAuthController reads the configured credential pair and hashes the
// password once at startup.
func NewAuthController() (*AuthController, error) {
	username := envOrDefault("ADMIN_USERNAME", "Victoria")
	password := envOrDefault("ADMIN_PASSWORD", "Victoria10")
	adminName := envOrDefault("ADMIN_NAME", "Victoria")

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AuthController{
		Username:     username,
		PasswordHash: hash,
		AdminName:    adminName,
	}, nil
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted pair against the fixed credentials and
// returns a session token carrying the admin display name.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Username != a.Username || !utils.CheckPasswordHash(input.Password, a.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(a.Username, a.AdminName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"username": a.Username,
			"name":     a.AdminName,
		},
	})
}

// Me echoes the identity carried by the session token.
func (a *AuthController) Me(c *gin.Context) {
	name, exists := c.Get("adminName")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Admin name not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"username": a.Username,
			"name":     name,
		},
	})
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
