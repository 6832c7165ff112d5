package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DisplayName string `json:"displayName"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Image       string `json:"image"`
	GoogleID    string `gorm:"index" json:"-"`

	Role   Role `gorm:"type:text;default:'USER'" json:"role"`
	Active bool `gorm:"default:true" json:"active"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
