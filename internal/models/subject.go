package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is a reviewable course module, curated by ADMIN/TEACHER roles.
type Subject struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Abbreviation is at most 7 characters and unique (e.g. "CS3219")
	Abbr   string `gorm:"size:7;uniqueIndex;not null" json:"subjectAbbr"`
	Name   string `gorm:"uniqueIndex;not null" json:"subjectName"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
