package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares fixed windows across instances via a counter per key.
// The counter is created on first increment and expires with the window.
type RedisLimiter struct {
	client rueidis.Client
}

func NewRedisLimiter(client rueidis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := "ratelimit:" + key

	incrCmd := l.client.B().Incr().Key(redisKey).Build()
	count, err := l.client.Do(ctx, incrCmd).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expireCmd := l.client.B().Expire().
			Key(redisKey).
			Seconds(int64(window.Seconds())).
			Build()
		if err := l.client.Do(ctx, expireCmd).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}
