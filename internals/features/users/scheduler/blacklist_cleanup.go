package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	model "tourstravels_backend/internals/features/users/model"
)

// StartBlacklistCleanupScheduler prunes expired blacklist rows hourly so
// the table stays bounded by active token lifetimes.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("token_blacklist_expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup: removed %d expired tokens", res.RowsAffected)
			}
		}
	}()
}
