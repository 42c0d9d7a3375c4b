package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	mediaadapters "growth_journal/internal/feature/media/adapters"
	"growth_journal/internal/platform/cache"
)

// NewMediaStore creates the media repository wrapped with the Redis feed cache.
// When rdb is nil the cache is bypassed and every call reaches the database.
func NewMediaStore(db *gorm.DB, rdb *redis.Client, ttl time.Duration) cache.MediaStore {
	return cache.NewCachingMediaRepository(rdb, ttl, mediaadapters.NewMediaRepository(db), "feed")
}
