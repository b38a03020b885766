package queue

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver backs the queue with a Redis list so jobs survive restarts
// and can be shared across processes.
type RedisDriver struct {
	client *redis.Client
	key    string
}

// NewRedisDriver returns a driver pushing to the given list key.
func NewRedisDriver(client *redis.Client, key string) *RedisDriver {
	if key == "" {
		key = "terraquest:queue"
	}
	return &RedisDriver{client: client, key: key}
}

func (d *RedisDriver) Push(payload []byte) error {
	return d.client.LPush(context.Background(), d.key, payload).Err()
}

func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	res, err := d.client.BRPop(ctx, 5*time.Second, d.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // timed out, nothing queued
		}
		return nil, err
	}
	// BRPOP returns [key, value].
	if len(res) < 2 {
		return nil, nil
	}
	return []byte(res[1]), nil
}
