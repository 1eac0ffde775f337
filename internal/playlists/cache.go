package playlists

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache keeps owner playlist listings in redis for a short TTL.
// A nil client disables caching entirely; every method is a no-op then.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func cacheKey(ownerID string) string {
	return "playlists:user:" + ownerID
}

func (c *SummaryCache) Get(ctx context.Context, ownerID string) ([]PlaylistSummary, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, cacheKey(ownerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("playlists-service: cache get: %v", err)
		}
		return nil, false
	}
	var summaries []PlaylistSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		log.Printf("playlists-service: cache decode: %v", err)
		return nil, false
	}
	return summaries, true
}

func (c *SummaryCache) Set(ctx context.Context, ownerID string, summaries []PlaylistSummary) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		log.Printf("playlists-service: cache encode: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(ownerID), data, c.ttl).Err(); err != nil {
		log.Printf("playlists-service: cache set: %v", err)
	}
}

// Invalidate drops the owner's cached listing after any mutation of one
// of their playlists.
func (c *SummaryCache) Invalidate(ctx context.Context, ownerID string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(ownerID)).Err(); err != nil {
		log.Printf("playlists-service: cache invalidate: %v", err)
	}
}
