package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleCache implements ports.RoleCache on a shared Redis instance so API
// replicas observe role revocations without waiting out a local TTL.
type RoleCache struct {
	client *redis.Client
}

func NewRoleCache(addr string) *RoleCache {
	return &RoleCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (c *RoleCache) Get(ctx context.Context, identity string, _ time.Time) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(identity)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var roles []string
	if err := json.Unmarshal([]byte(raw), &roles); err != nil {
		return nil, false, err
	}
	return roles, true, nil
}

func (c *RoleCache) Set(ctx context.Context, identity string, roles []string, expiresAt time.Time) error {
	payload, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return c.client.Set(ctx, cacheKey(identity), payload, ttl).Err()
}

func (c *RoleCache) Invalidate(ctx context.Context, identity string) error {
	return c.client.Del(ctx, cacheKey(identity)).Err()
}

func (c *RoleCache) Close() error {
	return c.client.Close()
}

func cacheKey(identity string) string {
	return "access_roles:" + identity
}
