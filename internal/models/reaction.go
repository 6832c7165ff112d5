package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionKind distinguishes likes from dislikes.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the other kind.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// EntityModel tags which table a reaction's entity lives in.
type EntityModel string

const (
	EntityComment EntityModel = "comment"
	EntityPost    EntityModel = "post"
)

// Reaction ties one owner to one target entity. At most one row exists per
// (entity, owner, kind); rows are toggled inactive rather than deleted, so
// the table is an append-only history of who reacted to what.
type Reaction struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EntityID string `gorm:"uniqueIndex:idx_reaction_entity_owner_kind;not null" json:"entityId"`
	OwnerID  string `gorm:"uniqueIndex:idx_reaction_entity_owner_kind;not null" json:"ownerId"`
	Owner    User   `gorm:"foreignKey:OwnerID" json:"-"`

	EntityModel EntityModel  `gorm:"type:text;not null" json:"entityModel"`
	Kind        ReactionKind `gorm:"type:text;uniqueIndex:idx_reaction_entity_owner_kind;not null" json:"kind"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
}

func (r *Reaction) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// RatingCount is the aggregator output for one entity.
type RatingCount struct {
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}
