package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a review of a subject written by one user.
type Post struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GradeReceived       string `gorm:"not null" json:"gradeReceived"`
	TeacherRating       int    `gorm:"not null" json:"teacherRating"`
	UsefulnessRating    int    `gorm:"not null" json:"usefulnessRating"`
	ParticipationRating int    `gorm:"not null" json:"participationRating"`
	AcademicYear        int    `gorm:"not null" json:"academicYear"`
	Semester            int    `gorm:"not null" json:"semester"`

	ReviewerID string `gorm:"index;not null" json:"reviewerId"`
	Reviewer   User   `gorm:"foreignKey:ReviewerID" json:"-"`

	SubjectID string  `gorm:"index;not null" json:"subjectId"`
	Subject   Subject `gorm:"foreignKey:SubjectID" json:"-"`

	// Optional
	TeacherID *string `json:"teacherId,omitempty"`
	Teacher   *User   `gorm:"foreignKey:TeacherID" json:"-"`
	Detail    string  `json:"detail,omitempty"`
	Section   string  `json:"section,omitempty"`

	Active bool `gorm:"not null;default:true" json:"active"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
