package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/services"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/logger"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetActiveCommentsByPost handles GET /comments/post/:postId
func GetActiveCommentsByPost(c *gin.Context) {
	postID := c.Param("postId")

	comments, err := services.ListActiveComments(database.DB, postID, 0, 0)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		out = append(out, commentJSON(comment))
	}
	c.JSON(http.StatusOK, out)
}

// GetActiveCommentsByPostAndPage handles
// GET /comments/post/:postId/page/:pageNo/size/:pageSize
func GetActiveCommentsByPostAndPage(c *gin.Context) {
	postID := c.Param("postId")
	// The paged surface always paginates; out-of-range path values fall
	// back to page 1 / size 10 rather than the unpaginated listing.
	pageNo, pageSize := services.NormalizePage(pathInt(c, "pageNo"), pathInt(c, "pageSize"))

	comments, err := services.ListActiveComments(database.DB, postID, pageNo, pageSize)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		out = append(out, commentJSON(comment))
	}
	c.JSON(http.StatusOK, out)
}

// GetCommentByID handles GET /comments/:commentId
func GetCommentByID(c *gin.Context) {
	commentID := c.Param("commentId")

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No comment with that id"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

type commentInput struct {
	BasePost  string `json:"basePost" binding:"required"`
	Commenter string `json:"commenter"`
	Body      string `json:"body" binding:"required"`
}

// AddComment handles POST /comments. The commenter defaults to the
// authenticated caller; both commenter and base post must resolve.
func AddComment(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	commenterID := input.Commenter
	if userID, exists := c.Get("userId"); exists && commenterID == "" {
		commenterID = userID.(string)
	}

	comment := models.Comment{
		PostID:      input.BasePost,
		CommenterID: commenterID,
		Body:        input.Body,
	}
	if err := services.CreateComment(database.DB, &comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// EditComment handles PUT /comments/:commentId. Only the body is mutable;
// commenter and base post are identity fields.
func EditComment(c *gin.Context) {
	commentID := c.Param("commentId")
	if !utils.IsValidID(commentID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No comment with that id"})
		return
	}

	var input struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "No comment with that id"})
			return
		}
		respondError(c, err)
		return
	}

	if comment.CommenterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only edit your own comments"})
		return
	}

	if err := database.DB.Model(&comment).Update("body", utils.SanitizeText(input.Body)).Error; err != nil {
		respondError(c, err)
		return
	}
	database.DB.First(&comment, "id = ?", commentID)
	c.JSON(http.StatusOK, comment)
}

// SoftDeleteComment handles DELETE /comments/:commentId. The record is
// deactivated, never removed.
func SoftDeleteComment(c *gin.Context) {
	commentID := c.Param("commentId")
	if !utils.IsValidID(commentID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No comment with that id"})
		return
	}

	comment, err := services.SoftDeleteComment(database.DB, commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// LikeComment handles POST /comments/:commentId/like
func LikeComment(c *gin.Context) {
	reactToComment(c, models.ReactionLike)
}

// DislikeComment handles POST /comments/:commentId/dislike
func DislikeComment(c *gin.Context) {
	reactToComment(c, models.ReactionDislike)
}

// reactToComment checks the target is a comment before running the toggle
// engine, so a post id on the comment surface is a 404 rather than a toggle.
func reactToComment(c *gin.Context, kind models.ReactionKind) {
	commentID := c.Param("commentId")
	if !utils.IsValidID(commentID) {
		c.JSON(http.StatusConflict, gin.H{"message": "Invalid ID format"})
		return
	}

	entityModel, err := services.ResolveEntity(database.DB, commentID)
	if err != nil && err != apperrors.ErrNotFound {
		respondError(c, err)
		return
	}
	if err != nil || entityModel != models.EntityComment {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	applyReaction(c, commentID, kind)
}

// ImportCommentsCSV handles POST /comments/csv/import (multipart form with
// a "csvFile" field). Each row goes through the normal create path; the
// summary row is appended to the response.
func ImportCommentsCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "csvFile is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	imported, summary, err := services.ImportCommentsCSV(database.DB, file)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info().
		Int("total", summary.TotalRecords).
		Int("inserted", summary.RecordsInserted).
		Int("errors", summary.RecordsError).
		Msg("Comment CSV import finished")

	out := make([]interface{}, 0, len(imported)+1)
	for _, comment := range imported {
		out = append(out, comment)
	}
	out = append(out, summary)
	c.JSON(http.StatusCreated, out)
}

// ExportCommentsCSV handles GET /comments/csv/export
func ExportCommentsCSV(c *gin.Context) {
	// Fetch first so a failed query can still produce an error status
	// instead of a half-written attachment.
	var buf bytes.Buffer
	if err := services.ExportCommentsCSV(database.DB, &buf); err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Export failed: %v", err)})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=mod-checkup-comments.csv`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
