package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Forgot-password throttling defaults.
const (
	DefaultResetRequestLimit  = 5
	DefaultResetRequestWindow = 15 * time.Minute

	resetLimitKeyPrefix = "reset_requests:"
)

// ResetLimiter counts forgot-password requests per email.
type ResetLimiter interface {
	// Allow records a request for email and reports whether it is within the limit.
	Allow(ctx context.Context, email string) (bool, error)
}

type redisResetLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

// NewResetLimiter creates a Redis fixed-window ResetLimiter. A limit of zero disables throttling.
func NewResetLimiter(client *redis.Client, limit int, window time.Duration) ResetLimiter {
	if window <= 0 {
		window = DefaultResetRequestWindow
	}
	return &redisResetLimiter{redis: client, limit: limit, window: window}
}

func (l *redisResetLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if l.limit == 0 {
		return true, nil
	}

	key := resetLimitKeyPrefix + email

	// SET NX EX opens the window and INCR counts in the same transaction,
	// so a counter never exists without its expiry.
	var incr *redis.IntCmd
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, l.window)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to count request on %s: %w", key, err)
	}

	return incr.Val() <= int64(l.limit), nil
}
