package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements sliding-window rate limiting on Redis sorted sets.
type Limiter struct {
	client    *redis.Client
	keyPrefix string
}

func NewLimiter(client *Client, keyPrefix string) *Limiter {
	return &Limiter{
		client:    client.Redis(),
		keyPrefix: keyPrefix,
	}
}

type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

// Allow checks and records one request for key. The Lua script keeps
// the remove-count-add sequence atomic; member values come from an
// INCR counter so same-millisecond requests stay distinct.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	redisKey := l.keyPrefix + key

	script := redis.NewScript(`
		local key = KEYS[1]
		local now = tonumber(ARGV[1])
		local window_start = tonumber(ARGV[2])
		local limit = tonumber(ARGV[3])
		local window_ms = tonumber(ARGV[4])

		redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

		local current = redis.call('ZCARD', key)

		if current < limit then
			local counter = redis.call('INCR', key .. ':counter')
			redis.call('ZADD', key, now, now .. ':' .. counter)
			local expire_seconds = math.ceil(window_ms / 1000)
			redis.call('EXPIRE', key, expire_seconds)
			redis.call('EXPIRE', key .. ':counter', expire_seconds)
			return {1, limit - current - 1, 0}
		else
			local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
			local reset_at = 0
			if oldest and #oldest >= 2 then
				reset_at = tonumber(oldest[2]) + window_ms
			end
			return {0, 0, reset_at}
		end
	`)

	result, err := script.Run(ctx, l.client, []string{redisKey},
		now.UnixMilli(), windowStart.UnixMilli(), limit, window.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis script error: %w", err)
	}

	if len(result) != 3 {
		return nil, fmt.Errorf("unexpected redis response length: %d", len(result))
	}

	resetAt := now.Add(window)
	if result[2] > 0 {
		resetAt = time.UnixMilli(result[2])
	}

	return &RateLimitResult{
		Allowed:   result[0] == 1,
		Remaining: int(result[1]),
		ResetAt:   resetAt,
		Limit:     limit,
	}, nil
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	redisKey := l.keyPrefix + key
	return l.client.Del(ctx, redisKey, redisKey+":counter").Err()
}
