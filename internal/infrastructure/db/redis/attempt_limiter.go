package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptLimiter counts failed logins per key in Redis. The counter expires
// window after the first failure, which is also how long a lockout lasts.
// Key format: login:failures:<email>
type AttemptLimiter struct {
	client redis.Cmdable
	max    int
	window time.Duration
}

func NewAttemptLimiter(client redis.Cmdable, max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{client: client, max: max, window: window}
}

func (l *AttemptLimiter) Locked(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(key)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read login failures: %w", err)
	}
	return n >= l.max, nil
}

func (l *AttemptLimiter) RecordFailure(ctx context.Context, key string) (int, error) {
	k := l.key(key)
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return int(n), fmt.Errorf("expire login failures: %w", err)
		}
	}
	return int(n), nil
}

func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}

func (l *AttemptLimiter) key(email string) string {
	return "login:failures:" + email
}
