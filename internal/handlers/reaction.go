package handlers

import (
	"net/http"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/services"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// LikeEntity handles POST /reactions/:entityId/like
func LikeEntity(c *gin.Context) {
	applyReaction(c, c.Param("entityId"), models.ReactionLike)
}

// DislikeEntity handles POST /reactions/:entityId/dislike
func DislikeEntity(c *gin.Context) {
	applyReaction(c, c.Param("entityId"), models.ReactionDislike)
}

// applyReaction runs the toggle engine for the authenticated caller.
// 201 when the reaction record was newly created, 200 when an existing one
// was toggled.
func applyReaction(c *gin.Context, entityID string, kind models.ReactionKind) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	reaction, created, err := services.ApplyReaction(database.DB, entityID, ownerID, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, reaction)
}

// GetEntityRating handles GET /reactions/:entityId/rating plus the
// comment- and post-scoped rating routes. Counts only active reactions, so
// for any owner at most one of their records contributes to either total.
func GetEntityRating(c *gin.Context) {
	entityID := c.Param("entityId")
	if entityID == "" {
		entityID = c.Param("commentId")
	}
	if entityID == "" {
		entityID = c.Param("postId")
	}

	// The rating surface only distinguishes found from not found; real
	// persistence failures still surface as 500, never a fake 404.
	if !utils.IsValidID(entityID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No entity with that id"})
		return
	}
	if _, err := services.ResolveEntity(database.DB, entityID); err != nil {
		if err == apperrors.ErrNotFound || err == apperrors.ErrInvalidID {
			c.JSON(http.StatusNotFound, gin.H{"message": "No entity with that id"})
			return
		}
		respondError(c, err)
		return
	}

	counts, err := services.GetRatingCount(database.DB, entityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
