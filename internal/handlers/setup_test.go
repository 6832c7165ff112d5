package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the global DB to an in-memory SQLite instance so the
// handlers run against real queries.
func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}
	database.DB = db
}

// asUser injects the authenticated principal the way the auth middleware
// does.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return out
}

func seedUser(t *testing.T, name string) models.User {
	t.Helper()
	user := models.User{DisplayName: name, Email: name + "@example.com", Active: true, Role: models.RoleUser}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func seedSubject(t *testing.T, abbr, name string) models.Subject {
	t.Helper()
	subject := models.Subject{Abbr: abbr, Name: name, Active: true}
	if err := database.DB.Create(&subject).Error; err != nil {
		t.Fatalf("Failed to seed subject: %v", err)
	}
	return subject
}

func seedPost(t *testing.T, reviewer models.User, subject models.Subject) models.Post {
	t.Helper()
	post := models.Post{
		GradeReceived:       "B+",
		TeacherRating:       4,
		UsefulnessRating:    4,
		ParticipationRating: 2,
		AcademicYear:        2024,
		Semester:            2,
		ReviewerID:          reviewer.ID,
		SubjectID:           subject.ID,
		Active:              true,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		t.Fatalf("Failed to seed post: %v", err)
	}
	return post
}

func seedComment(t *testing.T, post models.Post, commenter models.User) models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:      post.ID,
		CommenterID: commenter.ID,
		Body:        "webcast lectures, attendance optional",
		Active:      true,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}
	return comment
}
