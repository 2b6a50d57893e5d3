// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

var _ StoreInterface = (*RedisStore)(nil)

type RedisStore struct {
	client redis.Cmdable
}

func (s *RedisStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()

	if err := s.client.Set(ctx, keyPrefix+id, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return id, nil
}

func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrSessionNotFound
	}

	userID, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}

	return userID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}
