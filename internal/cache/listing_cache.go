package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"encheres-api/internal/model"
)

const (
	listingKey      = "articles:all"
	listingDirtyKey = "articles:all:dirty"
)

// ListingCache keeps the all-articles listing in Redis. A short-lived
// dirty marker suppresses cache fills while a write is in flight, so a
// stale listing cannot be re-cached right after an invalidation.
type ListingCache struct {
	client         *redisv9.Client
	listingTTL     time.Duration
	dirtyMarkerTTL time.Duration
}

func NewListingCache(client *redisv9.Client, listingTTL, dirtyMarkerTTL time.Duration) *ListingCache {
	if listingTTL <= 0 {
		listingTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &ListingCache{
		client:         client,
		listingTTL:     listingTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *ListingCache) GetAll(ctx context.Context) ([]model.ArticleWithAuthor, bool, error) {
	raw, err := c.client.Get(ctx, listingKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get listing failed: %w", err)
	}

	var articles []model.ArticleWithAuthor
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached listing failed: %w", err)
	}
	return articles, true, nil
}

func (c *ListingCache) SetAll(ctx context.Context, articles []model.ArticleWithAuthor) error {
	payload, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("marshal listing cache failed: %w", err)
	}
	if err := c.client.Set(ctx, listingKey, payload, c.listingTTL).Err(); err != nil {
		return fmt.Errorf("redis set listing failed: %w", err)
	}
	return nil
}

func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("redis delete listing failed: %w", err)
	}
	return nil
}

func (c *ListingCache) MarkDirty(ctx context.Context) error {
	if err := c.client.Set(ctx, listingDirtyKey, "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *ListingCache) IsDirty(ctx context.Context) (bool, error) {
	exists, err := c.client.Exists(ctx, listingDirtyKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}
