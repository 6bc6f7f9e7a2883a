package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "swimmingfish_backend/internals/features/users/auth/repository"
)

const cleanupInterval = 1 * time.Hour

// StartBlacklistCleanupScheduler purges expired blacklist rows every hour so
// the table stays proportional to live sessions. The goroutine exits when
// ctx is cancelled, which main does on shutdown.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB) {
	go runBlacklistCleanup(ctx, db, cleanupInterval)
}

func runBlacklistCleanup(ctx context.Context, db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d expired tokens", n)
			}
		}
	}
}
