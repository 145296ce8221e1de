// file: internals/features/users/auth/scheduler/blacklist_cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"careportal_backend/internals/features/users/auth/model"
)

// BlacklistCleanup owns the daily purge of expired token_blacklist rows.
// Like the roster refresher, it is a stoppable job: shutdown calls Stop and
// nothing keeps running after teardown.
type BlacklistCleanup struct {
	db   *gorm.DB
	cron *cron.Cron
}

// StartBlacklistCleanupScheduler purges expired blacklist rows once a day.
// TTL comes from TOKEN_BLACKLIST_TTL_DAYS (default 7).
func StartBlacklistCleanupScheduler(db *gorm.DB) *BlacklistCleanup {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	j := &BlacklistCleanup{db: db, cron: cron.New()}
	if _, err := j.cron.AddFunc("@every 24h", func() {
		j.purge(ttlDays)
	}); err != nil {
		log.Printf("[CLEANUP ERROR] job registration failed: %v", err)
		return j
	}
	j.cron.Start()
	log.Println("[CLEANUP] blacklist cleanup scheduled (every 24h)")
	return j
}

func (j *BlacklistCleanup) purge(ttlDays int) {
	log.Println("[CLEANUP] purging expired token_blacklist rows...")

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	var expiredTokens []model.TokenBlacklist
	if err := j.db.
		Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
		Limit(100).
		Find(&expiredTokens).Error; err != nil {
		log.Printf("[CLEANUP ERROR] failed to fetch expired tokens: %v", err)
		return
	}
	if len(expiredTokens) == 0 {
		log.Println("[CLEANUP] nothing to remove")
		return
	}
	if err := j.db.Delete(&expiredTokens).Error; err != nil {
		log.Printf("[CLEANUP ERROR] failed to delete tokens: %v", err)
		return
	}
	log.Printf("[CLEANUP] %d expired tokens removed", len(expiredTokens))
}

// Stop halts the schedule and waits for an in-flight purge to finish.
func (j *BlacklistCleanup) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	log.Println("[CLEANUP] blacklist cleanup stopped")
}
