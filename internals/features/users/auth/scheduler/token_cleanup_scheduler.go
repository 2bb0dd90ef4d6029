package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "sigi_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler soft-deletes blacklist rows whose tokens
// have expired anyway. Runs hourly for the lifetime of the process.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		cleanup(db)
		for range ticker.C {
			cleanup(db)
		}
	}()
}

func cleanup(db *gorm.DB) {
	res := db.Where("expired_at < ?", time.Now()).Delete(&authModel.TokenBlacklistModel{})
	if res.Error != nil {
		log.Println("[ERROR] blacklist cleanup:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] blacklist cleanup removed %d expired tokens", res.RowsAffected)
	}
}
