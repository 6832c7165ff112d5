package services

import (
	"fmt"
	"time"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/database"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/Mod-Checkup/mod-checkup-backend/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ratingCacheTTL = 30 * time.Second

func ratingCacheKey(entityID string) string {
	return fmt.Sprintf("rating:%s", entityID)
}

// ResolveEntity maps an id to the model it belongs to, comments first.
// Returns ErrInvalidID for malformed ids and ErrNotFound when neither
// table has the row, so no reaction is ever written against a dangling id.
func ResolveEntity(db *gorm.DB, entityID string) (models.EntityModel, error) {
	if !utils.IsValidID(entityID) {
		return "", apperrors.ErrInvalidID
	}

	var comment models.Comment
	if err := db.Select("id").First(&comment, "id = ?", entityID).Error; err == nil {
		return models.EntityComment, nil
	} else if err != gorm.ErrRecordNotFound {
		return "", err
	}

	var post models.Post
	if err := db.Select("id").First(&post, "id = ?", entityID).Error; err == nil {
		return models.EntityPost, nil
	} else if err != gorm.ErrRecordNotFound {
		return "", err
	}

	return "", apperrors.ErrNotFound
}

// ApplyReaction records a like or dislike by ownerID on entityID and
// returns the resulting row plus whether it was newly created.
//
// The write is a single atomic upsert keyed on (entity, owner, kind):
// insert active=true, or flip active when the row already exists. Two
// concurrent identical calls therefore serialize on the unique index
// instead of both observing "no record" and double-inserting. The opposite
// kind is deactivated only after the primary row is durably written, and
// only when the result is active, so an owner can end up neutral (both
// inactive) but never both-active.
func ApplyReaction(db *gorm.DB, entityID, ownerID string, kind models.ReactionKind) (*models.Reaction, bool, error) {
	entityModel, err := ResolveEntity(db, entityID)
	if err != nil {
		return nil, false, err
	}

	created := false
	var reaction models.Reaction

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// Existence probe decides created-vs-toggled for the caller's
		// status code; state correctness does not depend on it.
		var existing models.Reaction
		findErr := tx.Where("entity_id = ? AND owner_id = ? AND kind = ?", entityID, ownerID, kind).
			First(&existing).Error
		if findErr != nil && findErr != gorm.ErrRecordNotFound {
			return findErr
		}
		created = findErr == gorm.ErrRecordNotFound

		row := models.Reaction{
			EntityID:    entityID,
			OwnerID:     ownerID,
			EntityModel: entityModel,
			Kind:        kind,
			Active:      true,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "entity_id"}, {Name: "owner_id"}, {Name: "kind"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"active":     gorm.Expr("NOT active"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		if err := tx.Where("entity_id = ? AND owner_id = ? AND kind = ?", entityID, ownerID, kind).
			First(&reaction).Error; err != nil {
			return err
		}

		if reaction.Active {
			// Mutual exclusion: the other kind goes inactive the moment
			// this one becomes active.
			if err := tx.Model(&models.Reaction{}).
				Where("entity_id = ? AND owner_id = ? AND kind = ? AND active = ?",
					entityID, ownerID, kind.Opposite(), true).
				Update("active", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, false, txErr
	}

	// Counts changed; drop the cached aggregate.
	_ = database.CacheInvalidate(ratingCacheKey(entityID))

	return &reaction, created, nil
}

// GetRatingCount counts active reactions for entityID partitioned by kind.
// Pure read; results are cached briefly and invalidated on every toggle.
func GetRatingCount(db *gorm.DB, entityID string) (models.RatingCount, error) {
	var counts models.RatingCount

	if err := database.CacheGet(ratingCacheKey(entityID), &counts); err == nil {
		return counts, nil
	}

	if err := db.Model(&models.Reaction{}).
		Where("entity_id = ? AND kind = ? AND active = ?", entityID, models.ReactionLike, true).
		Count(&counts.LikeCount).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Reaction{}).
		Where("entity_id = ? AND kind = ? AND active = ?", entityID, models.ReactionDislike, true).
		Count(&counts.DislikeCount).Error; err != nil {
		return counts, err
	}

	_ = database.CacheSet(ratingCacheKey(entityID), counts, ratingCacheTTL)

	return counts, nil
}
