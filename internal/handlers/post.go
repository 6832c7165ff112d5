package handlers

import (
	"net/http"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/services"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type postInput struct {
	GradeReceived       string  `json:"gradeReceived" binding:"required"`
	TeacherRating       int     `json:"teacherRating" binding:"required,min=1,max=5"`
	UsefulnessRating    int     `json:"usefulnessRating" binding:"required,min=1,max=5"`
	ParticipationRating int     `json:"participationRating" binding:"required,min=1,max=5"`
	AcademicYear        int     `json:"academicYear" binding:"required"`
	Semester            int     `json:"semester" binding:"required,min=1,max=3"`
	SubjectID           string  `json:"reviewedSubject" binding:"required"`
	TeacherID           *string `json:"reviewTeacher"`
	Detail              string  `json:"reviewDetail"`
	Section             string  `json:"section"`
}

// GetPostByID handles GET /posts/:postId
func GetPostByID(c *gin.Context) {
	postID := c.Param("postId")

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No post with that id"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /posts. The reviewer is always the caller.
func CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !utils.IsValidID(input.SubjectID) {
		c.JSON(http.StatusConflict, gin.H{"message": "Invalid ID format"})
		return
	}
	var subject models.Subject
	if err := database.DB.Select("id").First(&subject, "id = ?", input.SubjectID).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Invalid ID"})
		return
	}
	if input.TeacherID != nil {
		var teacher models.User
		if err := database.DB.Select("id").First(&teacher, "id = ?", *input.TeacherID).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Invalid ID"})
			return
		}
	}

	post := models.Post{
		GradeReceived:       input.GradeReceived,
		TeacherRating:       input.TeacherRating,
		UsefulnessRating:    input.UsefulnessRating,
		ParticipationRating: input.ParticipationRating,
		AcademicYear:        input.AcademicYear,
		Semester:            input.Semester,
		ReviewerID:          userID,
		SubjectID:           input.SubjectID,
		TeacherID:           input.TeacherID,
		Detail:              utils.SanitizeText(input.Detail),
		Section:             input.Section,
		Active:              true,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PUT /posts/:postId. Reviewer and subject are identity
// fields; everything else is updatable by the owner.
func UpdatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID := c.Param("postId")
	if !utils.IsValidID(postID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No post with that id"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "No post with that id"})
			return
		}
		respondError(c, err)
		return
	}
	if post.ReviewerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only edit your own posts"})
		return
	}

	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"grade_received":       input.GradeReceived,
		"teacher_rating":       input.TeacherRating,
		"usefulness_rating":    input.UsefulnessRating,
		"participation_rating": input.ParticipationRating,
		"academic_year":        input.AcademicYear,
		"semester":             input.Semester,
		"detail":               utils.SanitizeText(input.Detail),
		"section":              input.Section,
	}
	if err := database.DB.Model(&post).Updates(updates).Error; err != nil {
		respondError(c, err)
		return
	}

	database.DB.First(&post, "id = ?", postID)
	c.JSON(http.StatusOK, post)
}

// SoftDeletePost handles DELETE /posts/:postId
func SoftDeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID := c.Param("postId")

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No post with that id"})
		return
	}
	if post.ReviewerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own posts"})
		return
	}

	if err := database.DB.Model(&post).Update("active", false).Error; err != nil {
		respondError(c, err)
		return
	}
	post.Active = false
	c.JSON(http.StatusOK, post)
}

// GetPostsBySubject handles GET /subjects/:subject/posts
func GetPostsBySubject(c *gin.Context) {
	listPostsBySubject(c, 0, 0)
}

// GetActivePostsBySubjectAndPage handles
// GET /subjects/:subject/posts/page/:pageNo/size/:pageSize
func GetActivePostsBySubjectAndPage(c *gin.Context) {
	pageNo, pageSize := services.NormalizePage(pathInt(c, "pageNo"), pathInt(c, "pageSize"))
	listPostsBySubject(c, pageNo, pageSize)
}

func listPostsBySubject(c *gin.Context, page, pageSize int) {
	subjectID := c.Param("subject")

	var posts []models.Post
	q := database.DB.Where("subject_id = ? AND active = ?", subjectID, true).
		Order("created_at desc")
	if page != 0 || pageSize != 0 {
		page, pageSize = services.NormalizePage(page, pageSize)
		q = q.Offset(pageSize * (page - 1)).Limit(pageSize)
	}

	if err := q.Find(&posts).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// LikePost handles POST /posts/:postId/like
func LikePost(c *gin.Context) {
	reactToPost(c, models.ReactionLike)
}

// DislikePost handles POST /posts/:postId/dislike
func DislikePost(c *gin.Context) {
	reactToPost(c, models.ReactionDislike)
}

func reactToPost(c *gin.Context, kind models.ReactionKind) {
	postID := c.Param("postId")
	if !utils.IsValidID(postID) {
		c.JSON(http.StatusConflict, gin.H{"message": "Invalid ID format"})
		return
	}

	entityModel, err := services.ResolveEntity(database.DB, postID)
	if err != nil && err != apperrors.ErrNotFound {
		respondError(c, err)
		return
	}
	if err != nil || entityModel != models.EntityPost {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	applyReaction(c, postID, kind)
}
