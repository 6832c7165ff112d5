package handlers

import (
	"net/http"
	"strconv"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError translates service-layer failures into the status/message
// contract. Anything that is not an AppError is an internal error and only
// gets logged, never echoed.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"message": appErr.Message})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// currentUserID pulls the authenticated principal set by the auth
// middleware; handlers never read session state from anywhere else.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return "", false
	}
	return userID.(string), true
}

func pathInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Param(name))
	return n
}

// commentJSON shapes a comment for responses: full comment fields plus the
// commenter's display name only, no other user fields.
func commentJSON(comment models.Comment) gin.H {
	return gin.H{
		"id":        comment.ID,
		"basePost":  comment.PostID,
		"body":      comment.Body,
		"active":    comment.Active,
		"createdAt": comment.CreatedAt,
		"commenter": gin.H{
			"id":          comment.CommenterID,
			"displayName": comment.Commenter.DisplayName,
		},
	}
}
