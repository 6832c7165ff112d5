package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/config"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/logger"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

var googleOauthConfig *oauth2.Config

func InitOAuthConfig() {
	if config.AppConfig.GoogleClientID == "" {
		logger.Warn().Msg("Google OAuth keys missing, login disabled")
		return
	}
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  config.AppConfig.GoogleCallbackURL,
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLogin handles GET /auth/google/login
func GoogleLogin(c *gin.Context) {
	if googleOauthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Google OAuth not configured"})
		return
	}
	url := googleOauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback: exchanges the code,
// upserts the user, then redirects to the frontend with our session token.
func GoogleCallback(c *gin.Context) {
	if googleOauthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Google OAuth not configured"})
		return
	}

	code := c.Query("code")
	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		logger.Error().Err(err).Msg("Google OAuth exchange failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to exchange token"})
		return
	}

	client := googleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get Google user info")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user info"})
		return
	}
	defer resp.Body.Close()

	var userInfo struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		logger.Error().Err(err).Msg("Failed to parse Google user info")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse user info"})
		return
	}

	user := handleOAuthLogin(c, userInfo.ID, userInfo.Email, userInfo.Name, userInfo.Picture)
	if user != nil {
		finishOAuthLogin(c, user)
	}
}

func handleOAuthLogin(c *gin.Context, googleID, email, name, image string) *models.User {
	var user models.User
	result := database.DB.Unscoped().Where("email = ?", email).First(&user)

	if result.Error == nil {
		// Restore a soft-deleted account instead of tripping the unique
		// email index on re-registration.
		if user.DeletedAt.Valid {
			if err := database.DB.Unscoped().Model(&user).Update("deleted_at", nil).Error; err != nil {
				logger.Error().Err(err).Str("email", email).Msg("Failed to restore soft-deleted user during OAuth")
			} else {
				logger.Info().Str("email", email).Msg("Restored soft-deleted user via OAuth")
			}
		}
		if user.GoogleID == "" {
			database.DB.Model(&user).Update("google_id", googleID)
		}
		return &user
	}

	if result.Error == gorm.ErrRecordNotFound {
		user = models.User{
			Email:       email,
			DisplayName: name,
			Image:       image,
			GoogleID:    googleID,
			Role:        models.RoleUser,
			Active:      true,
		}
		if createErr := database.DB.Create(&user).Error; createErr != nil {
			logger.Error().Err(createErr).Str("email", email).Msg("Failed to create user during OAuth")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Account creation failed"})
			return nil
		}
		logger.Info().Str("email", email).Str("user_id", user.ID).Msg("New user registered via OAuth")
		return &user
	}

	logger.Error().Err(result.Error).Str("email", email).Msg("Database query failed during OAuth login")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error during login"})
	return nil
}

func finishOAuthLogin(c *gin.Context, user *models.User) {
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token during OAuth")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User logged in via OAuth")

	redirectURL := fmt.Sprintf("%s/auth/success?token=%s", config.AppConfig.FrontendURL, token)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// Logout handles POST /auth/logout. Tokens are short-lived and stateless;
// the client discards its copy.
func Logout(c *gin.Context) {
	if userID, exists := c.Get("userId"); exists {
		logger.Info().Str("user_id", userID.(string)).Msg("User logged out")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
