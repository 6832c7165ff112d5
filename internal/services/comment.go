package services

import (
	"strings"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// NormalizePage clamps out-of-range pagination values: page <= 0 behaves as
// page 1, pageSize <= 0 behaves as pageSize 10.
func NormalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// CreateComment persists a new comment after checking that both the
// commenter and the base post resolve to existing records. A dangling
// reference is a Conflict, matching the create contract.
func CreateComment(db *gorm.DB, comment *models.Comment) error {
	if !utils.IsValidID(comment.CommenterID) || !utils.IsValidID(comment.PostID) {
		return apperrors.Conflict("Invalid ID")
	}
	if strings.TrimSpace(comment.Body) == "" {
		return apperrors.Conflict("Comment body is required")
	}

	var commenter models.User
	if err := db.Select("id").First(&commenter, "id = ?", comment.CommenterID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.Conflict("Invalid ID")
		}
		return err
	}
	var post models.Post
	if err := db.Select("id").First(&post, "id = ?", comment.PostID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.Conflict("Invalid ID")
		}
		return err
	}

	comment.Body = utils.SanitizeText(comment.Body)
	comment.Active = true
	return db.Create(comment).Error
}

// ListActiveComments returns active comments for a post, newest first.
// pageSize == 0 with page == 0 means "no pagination" and returns everything.
func ListActiveComments(db *gorm.DB, postID string, page, pageSize int) ([]models.Comment, error) {
	var comments []models.Comment
	q := db.Preload("Commenter").
		Where("post_id = ? AND active = ?", postID, true).
		Order("created_at desc")

	if page != 0 || pageSize != 0 {
		page, pageSize = NormalizePage(page, pageSize)
		q = q.Offset(pageSize * (page - 1)).Limit(pageSize)
	}

	if err := q.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// SoftDeleteComment flips the active flag; the record itself stays.
func SoftDeleteComment(db *gorm.DB, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("No comment with that id")
		}
		return nil, err
	}
	if err := db.Model(&comment).Update("active", false).Error; err != nil {
		return nil, err
	}
	comment.Active = false
	return &comment, nil
}
