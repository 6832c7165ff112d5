package services

import (
	"testing"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite DB for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{DisplayName: name, Email: name + "@example.com", Active: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, reviewer models.User) models.Post {
	t.Helper()
	subject := models.Subject{Abbr: "T" + reviewer.ID[:6], Name: "Subject " + reviewer.ID, Active: true}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("Failed to create test subject: %v", err)
	}
	post := models.Post{
		GradeReceived:       "A",
		TeacherRating:       5,
		UsefulnessRating:    4,
		ParticipationRating: 3,
		AcademicYear:        2023,
		Semester:            1,
		ReviewerID:          reviewer.ID,
		SubjectID:           subject.ID,
		Active:              true,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, post models.Post, commenter models.User) models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:      post.ID,
		CommenterID: commenter.ID,
		Body:        "solid module, heavy workload",
		Active:      true,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}
