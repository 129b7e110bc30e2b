package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ResultCache = (*ResultCache)(nil)

const (
	// Key prefixes for Redis
	resultPrefix      = "search:"
	resultIndexPrefix = "search:index:"

	// indexTTL keeps orphaned index sets from outliving their entries
	// for long. Entries themselves expire via their own TTL.
	indexTTL = time.Hour
)

// ResultCache implements driven.ResultCache using Redis. Each cached
// result is indexed under its spec code so mapping writes can drop
// every variant (family, year, jurisdiction) in one call.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a new Redis-backed ResultCache
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// Get retrieves a cached search result
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.SearchResult, error) {
	data, err := c.client.Get(ctx, resultPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached result: %w", err)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}

// Set stores a search result with a TTL and indexes it by spec code
func (c *ResultCache) Set(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, resultPrefix+key, data, ttl)
	pipe.SAdd(ctx, resultIndexPrefix+result.SpecCode.Code, resultPrefix+key)
	pipe.Expire(ctx, resultIndexPrefix+result.SpecCode.Code, indexTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}
	return nil
}

// InvalidateSpecCode drops every cached result for the spec code
func (c *ResultCache) InvalidateSpecCode(ctx context.Context, specCode string) error {
	indexKey := resultIndexPrefix + specCode

	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read result index: %w", err)
	}

	keys = append(keys, indexKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate results: %w", err)
	}
	return nil
}
