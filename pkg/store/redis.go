package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection as a single JSON value in Redis. Handy
// when several TerraQuest instances should see the same data without a SQL
// database.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisStore verifies the connection with a ping before returning.
func NewRedisStore(rdb *redis.Client) (*RedisStore, error) {
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisStore) Get(key string, dest any) (bool, error) {
	raw, err := s.rdb.Get(s.ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("store: redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.rdb.Set(s.ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(key string) error {
	if err := s.rdb.Del(s.ctx, key).Err(); err != nil {
		return fmt.Errorf("store: redis del %s: %w", key, err)
	}
	return nil
}
