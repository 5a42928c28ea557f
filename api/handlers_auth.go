package api

import (
	"errors"
	"fmt"
	"net/http"

	"bandserver/config"
	"bandserver/db"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
	Username  string `json:"username"`
}

// LoginHandler authenticates the admin and issues a JWT.
// @Summary      Admin Login
// @Description  Verifies the admin username and password against the stored credentials and returns a bearer token for the /admin routes.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Admin username and password"
// @Success      200  {object}  LoginResponse "Authentication succeeded; use the token as 'Authorization: Bearer <token>'."
// @Failure      400  {object}  utils.APIError "Malformed request body or missing fields."
// @Failure      401  {object}  utils.APIError "Unknown username or wrong password."
// @Failure      500  {object}  utils.APIError "Token generation failed."
// @Router       /auth/login [post]
func LoginHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if !database.VerifyAdminLogin(req.Username, req.Password) {
		utils.GinUnauthorized(c, "Invalid username or password.")
		return
	}

	token, err := utils.GenerateJWT(req.Username, cfg)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to generate token: %v", err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(cfg.TokenLifetime.Seconds()),
		Username:  req.Username,
	})
}

// LogoutHandler ends the admin session. Tokens are stateless, so this only
// confirms the client should discard its copy.
// @Summary      Admin Logout
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func LogoutHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out. Discard the token client-side."})
}

// ChangePasswordRequest carries a password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordHandler rotates the admin password.
// @Summary      Change Admin Password
// @Description  Verifies the current password against the stored hash and replaces it with a hash of the new one. The change is persisted, so it survives restarts.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords body ChangePasswordRequest true "Current and new password; the new password must be at least 8 characters."
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  utils.APIError "Malformed body or new password too short."
// @Failure      401  {object}  utils.APIError "Current password does not match."
// @Failure      500  {object}  utils.APIError "Hashing or persistence failure."
// @Router       /auth/password [put]
func ChangePasswordHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := database.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, db.ErrWrongPassword) {
			utils.GinUnauthorized(c, "Current password is incorrect.")
			return
		}
		utils.GinInternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// UpdateCredentialsRequest carries the editable admin identity fields.
type UpdateCredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// UpdateCredentialsHandler replaces the admin username and contact email.
// @Summary      Update Admin Credentials
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        credentials body UpdateCredentialsRequest true "New username and email. The password is changed via /auth/password."
// @Success      200  {object}  models.AdminAccount "Updated identity, password hash omitted."
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Router       /auth/credentials [put]
func UpdateCredentialsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	account := database.UpdateAdminCredentials(req.Username, req.Email)
	c.JSON(http.StatusOK, account)
}
