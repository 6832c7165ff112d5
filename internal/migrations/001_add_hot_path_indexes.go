package migrations

import "gorm.io/gorm"

// Migration001AddHotPathIndexes adds indexes for the hot-path queries:
// 1. Rating aggregation: active reactions per entity
// 2. Comment listing: active comments per post ordered by recency
// 3. Post listing: active posts per subject
//
// All statements are idempotent (IF NOT EXISTS) for safe re-runs. The
// migrator wraps Up() in a transaction, so these run without CONCURRENTLY;
// on very large tables run the concurrent variant manually instead.
func Migration001AddHotPathIndexes() Migration {
	return Migration{
		ID:   "001_add_hot_path_indexes",
		Name: "Add indexes for rating and listing hot paths",
		Up: func(db *gorm.DB) error {
			// Optimizes: WHERE entity_id = ? AND kind = ? AND active
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_reactions_entity_active
				ON reactions (entity_id, kind, active)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Optimizes: WHERE post_id = ? AND active ORDER BY created_at DESC
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_comments_post_active
				ON comments (post_id, active, created_at DESC)
			`
			if err := db.Exec(idx2).Error; err != nil {
				return err
			}

			// Optimizes: WHERE subject_id = ? AND active ORDER BY created_at DESC
			idx3 := `
				CREATE INDEX IF NOT EXISTS idx_posts_subject_active
				ON posts (subject_id, active, created_at DESC)
			`
			return db.Exec(idx3).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_posts_subject_active`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_comments_post_active`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_reactions_entity_active`).Error
		},
	}
}
