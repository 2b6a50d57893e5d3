// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ CacheInterface = (*RedisCache)(nil)

type RedisCache struct {
	client redis.Cmdable
}

func (c *RedisCache) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key Key, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key.String(), value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}

	return c.client.Del(ctx, names...).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisClient builds the shared client used by the cache and the session store
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
