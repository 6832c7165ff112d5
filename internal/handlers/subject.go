package handlers

import (
	"net/http"
	"strings"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/services"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const subjectAbbrMaxLen = 7

type subjectInput struct {
	Abbr string `json:"subjectAbbr" binding:"required"`
	Name string `json:"subjectName" binding:"required"`
}

func validateSubjectInput(input subjectInput) string {
	if len(input.Abbr) > subjectAbbrMaxLen {
		return "Subject abbreviation must be at most 7 characters"
	}
	if strings.TrimSpace(input.Abbr) == "" || strings.TrimSpace(input.Name) == "" {
		return "Subject abbreviation and name are required"
	}
	return ""
}

// GetAllActiveSubjects handles GET /subjects
func GetAllActiveSubjects(c *gin.Context) {
	var subjects []models.Subject
	if err := database.DB.Where("active = ?", true).Order("abbr asc").Find(&subjects).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// GetAllActiveSubjectsByPage handles GET /subjects/page/:pageNo/size/:pageSize
func GetAllActiveSubjectsByPage(c *gin.Context) {
	pageNo, pageSize := services.NormalizePage(pathInt(c, "pageNo"), pathInt(c, "pageSize"))

	var subjects []models.Subject
	if err := database.DB.Where("active = ?", true).
		Order("abbr asc").
		Offset(pageSize * (pageNo - 1)).
		Limit(pageSize).
		Find(&subjects).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// GetSubjectInfo handles GET /subjects/:subject
func GetSubjectInfo(c *gin.Context) {
	subjectID := c.Param("subject")

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No subject with that id"})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// SearchSubjectByAbbr handles GET /subjects/search/:subjectAbbr
func SearchSubjectByAbbr(c *gin.Context) {
	pattern := utils.SanitizeSearchQuery(c.Param("subjectAbbr"))

	var subjects []models.Subject
	if err := database.DB.Where("active = ? AND abbr LIKE ?", true, pattern).
		Order("abbr asc").
		Find(&subjects).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// AddSubject handles POST /subjects (ADMIN/TEACHER only, enforced in routes)
func AddSubject(c *gin.Context) {
	var input subjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if msg := validateSubjectInput(input); msg != "" {
		c.JSON(http.StatusConflict, gin.H{"message": msg})
		return
	}

	subject := models.Subject{
		Abbr:   strings.ToUpper(strings.TrimSpace(input.Abbr)),
		Name:   strings.TrimSpace(input.Name),
		Active: true,
	}
	if err := database.DB.Create(&subject).Error; err != nil {
		// Unique violation on abbr or name
		c.JSON(http.StatusConflict, gin.H{"message": "Subject with that abbreviation or name already exists"})
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject handles PUT /subjects/:subject (ADMIN/TEACHER only)
func UpdateSubject(c *gin.Context) {
	subjectID := c.Param("subject")
	if !utils.IsValidID(subjectID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No subject with that id"})
		return
	}

	var input struct {
		Abbr   *string `json:"subjectAbbr"`
		Name   *string `json:"subjectName"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "No subject with that id"})
			return
		}
		respondError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if input.Abbr != nil {
		abbr := strings.ToUpper(strings.TrimSpace(*input.Abbr))
		if abbr == "" || len(abbr) > subjectAbbrMaxLen {
			c.JSON(http.StatusConflict, gin.H{"message": "Subject abbreviation must be 1-7 characters"})
			return
		}
		updates["abbr"] = abbr
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusConflict, gin.H{"message": "Subject name is required"})
			return
		}
		updates["name"] = name
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&subject).Updates(updates).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Subject with that abbreviation or name already exists"})
			return
		}
	}

	database.DB.First(&subject, "id = ?", subjectID)
	c.JSON(http.StatusOK, subject)
}
