package projects

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const optionsKeyPrefix = "projects:options:" // projects:options:{field}

// OptionsCache is a TTL'd Redis cache for the distinct-value option lists
// that populate the frontend filter dropdowns. Failures are logged and
// treated as cache misses; the database stays the source of truth.
type OptionsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewOptionsCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *OptionsCache {
	return &OptionsCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *OptionsCache) Get(ctx context.Context, field string) ([]string, bool) {
	data, err := c.client.Get(ctx, optionsKeyPrefix+field).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("field", field).Msg("options cache read failed")
		return nil, false
	}

	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		c.log.Warn().Err(err).Str("field", field).Msg("options cache entry corrupt")
		return nil, false
	}
	return values, true
}

func (c *OptionsCache) Set(ctx context.Context, field string, values []string) {
	data, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, optionsKeyPrefix+field, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("field", field).Msg("options cache write failed")
	}
}

// Invalidate drops every cached option list. Called after each insert since
// a new row may introduce a new status, place or user.
func (c *OptionsCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(optionColumns))
	for field := range optionColumns {
		keys = append(keys, optionsKeyPrefix+field)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("options cache invalidation failed")
	}
}
