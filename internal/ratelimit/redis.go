// Package ratelimit throttles login attempts against the single admin
// credential. Failures are counted per identifier in Redis inside a fixed
// window; a successful login clears the counter.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	client *redis.Client
	prefix string
	max    int
	window time.Duration
}

func NewRedisLimiter(redisURL string, max int, window time.Duration) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisLimiterWithClient(client, max, window), nil
}

func NewRedisLimiterWithClient(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "login-fail:",
		max:    max,
		window: window,
	}
}

func (l *RedisLimiter) key(identifier string) string {
	return l.prefix + strings.ToLower(strings.TrimSpace(identifier))
}

// RecordFailure counts one failed attempt. The window starts at the first
// failure; later failures inside the window do not extend it.
func (l *RedisLimiter) RecordFailure(ctx context.Context, identifier string) error {
	key := l.key(identifier)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("set failure window: %w", err)
		}
	}
	return nil
}

// TooManyFailures reports whether the identifier has reached the failure
// budget for the current window.
func (l *RedisLimiter) TooManyFailures(ctx context.Context, identifier string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(identifier)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read failure count: %w", err)
	}
	return count >= l.max, nil
}

// Reset clears the failure counter after a successful login.
func (l *RedisLimiter) Reset(ctx context.Context, identifier string) error {
	if err := l.client.Del(ctx, l.key(identifier)).Err(); err != nil {
		return fmt.Errorf("reset failure count: %w", err)
	}
	return nil
}

func (l *RedisLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
