// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/metrics"
)

// MediaStore is the full set of media persistence operations the decorator wraps.
type MediaStore interface {
	usecase.FeedRepository
	usecase.EngagementRepository
	usecase.MediaRepository
}

// CachingMediaRepository decorates a MediaStore with Redis caching of feed pages.
// Reads of the feed go through the cache; every mutation passes through to the
// inner store and then invalidates all cached pages.
type CachingMediaRepository struct {
	inner     MediaStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ MediaStore = (*CachingMediaRepository)(nil)

// NewCachingMediaRepository decorates a MediaStore with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "feed".
func NewCachingMediaRepository(rdb *redis.Client, ttl time.Duration, inner MediaStore, namespace string) *CachingMediaRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "feed"
	}
	return &CachingMediaRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Feed returns a feed page, checking the cache first then falling back to the database.
func (c *CachingMediaRepository) Feed(ctx context.Context, q usecase.FeedQuery) ([]entity.Media, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Feed(ctx, q)
	}

	key := c.cacheKey(q)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Media
		if err := json.Unmarshal(b, &out); err == nil {
			metrics.RecordFeedCache(true)
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	metrics.RecordFeedCache(false)
	out, err := c.inner.Feed(ctx, q)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingMediaRepository) ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
	res, err := c.inner.ToggleLike(ctx, mediaID, userID)
	if err != nil {
		return res, err
	}
	c.invalidate(ctx)
	return res, nil
}

func (c *CachingMediaRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	if err := c.inner.AddComment(ctx, comment); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMediaRepository) Create(ctx context.Context, m *entity.Media) error {
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMediaRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMediaRepository) FindByID(ctx context.Context, id string) (*entity.Media, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachingMediaRepository) ListAll(ctx context.Context) ([]entity.Media, error) {
	return c.inner.ListAll(ctx)
}

// invalidate drops every cached feed page. Failures are logged and ignored.
func (c *CachingMediaRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("feed cache invalidation failed", "namespace", c.namespace, "error", err)
	}
}

// cacheKey generates a cache key for a specific feed query.
func (c *CachingMediaRepository) cacheKey(q usecase.FeedQuery) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d",
		c.namespace,
		q.Sort,
		q.Type,
		searchKey(q.Search),
		q.Page,
		q.PageSize,
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMediaRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// searchKey encodes a search term so that distinct terms never share a key.
// Search is case-insensitive, so the term is lowercased first.
func searchKey(s string) string {
	return url.QueryEscape(strings.ToLower(s))
}
