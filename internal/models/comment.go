package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is user-authored content attached to a post. Comments are never
// hard-deleted; deletion flips Active off.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PostID string `gorm:"index;not null" json:"basePost"`
	Post   Post   `gorm:"foreignKey:PostID" json:"-"`

	CommenterID string `gorm:"index;not null" json:"commenter"`
	Commenter   User   `gorm:"foreignKey:CommenterID" json:"-"`

	Body   string `gorm:"type:text;not null" json:"body"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
