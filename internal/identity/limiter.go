package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adielbeauty/storefront/pkg/logger"
)

// RedisLimiter counts failed sign-ins per email in a Redis sliding window
type RedisLimiter struct {
	redis       *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLimiter creates a new limiter
func NewRedisLimiter(redisClient *redis.Client, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		redis:       redisClient,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *RedisLimiter) key(identifier string) string {
	return fmt.Sprintf("signin:failures:%s", strings.ToLower(identifier))
}

// Allow drops failures older than the window and compares the rest to the limit
func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := l.key(identifier)
	windowStart := time.Now().Add(-l.window)

	pipe := l.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return countCmd.Val() < int64(l.maxAttempts), nil
}

// RecordFailure adds a failure to the window
func (l *RedisLimiter) RecordFailure(ctx context.Context, identifier string) error {
	key := l.key(identifier)
	now := time.Now()

	pipe := l.redis.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, l.window+time.Minute)

	_, err := pipe.Exec(ctx)
	return err
}

// Reset forgets the failures
func (l *RedisLimiter) Reset(ctx context.Context, identifier string) error {
	return l.redis.Del(ctx, l.key(identifier)).Err()
}

// MemoryLimiter is the in-process sliding window used when Redis is unavailable
type MemoryLimiter struct {
	mu          sync.Mutex
	failures    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLimiter creates a new in-memory limiter
func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		failures:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

func (l *MemoryLimiter) prune(key string) []time.Time {
	cutoff := l.now().Add(-l.window)
	kept := l.failures[key][:0]
	for _, at := range l.failures[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = kept
	return kept
}

// Allow reports whether the key is under the limit
func (l *MemoryLimiter) Allow(_ context.Context, identifier string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(strings.ToLower(identifier))) < l.maxAttempts, nil
}

// RecordFailure adds a failure to the window
func (l *MemoryLimiter) RecordFailure(_ context.Context, identifier string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := strings.ToLower(identifier)
	l.failures[key] = append(l.prune(key), l.now())
	return nil
}

// Reset forgets the failures
func (l *MemoryLimiter) Reset(_ context.Context, identifier string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, strings.ToLower(identifier))
	return nil
}

// FallbackLimiter uses Redis and falls back to memory when Redis errors
type FallbackLimiter struct {
	primary  *RedisLimiter
	fallback *MemoryLimiter
}

// NewFallbackLimiter creates a limiter preferring Redis. A nil client uses memory only.
func NewFallbackLimiter(redisClient *redis.Client, maxAttempts int, window time.Duration) *FallbackLimiter {
	l := &FallbackLimiter{fallback: NewMemoryLimiter(maxAttempts, window)}
	if redisClient != nil {
		l.primary = NewRedisLimiter(redisClient, maxAttempts, window)
	}
	return l
}

// Allow checks Redis, or memory when Redis is down
func (l *FallbackLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	if l.primary != nil {
		allowed, err := l.primary.Allow(ctx, identifier)
		if err == nil {
			return allowed, nil
		}
		logger.Warn(ctx).Err(err).Msg("Sign-in limiter falling back to memory")
	}
	return l.fallback.Allow(ctx, identifier)
}

// RecordFailure records in Redis, or memory when Redis is down
func (l *FallbackLimiter) RecordFailure(ctx context.Context, identifier string) error {
	if l.primary != nil {
		if err := l.primary.RecordFailure(ctx, identifier); err == nil {
			return nil
		}
	}
	return l.fallback.RecordFailure(ctx, identifier)
}

// Reset clears both stores
func (l *FallbackLimiter) Reset(ctx context.Context, identifier string) error {
	if l.primary != nil {
		if err := l.primary.Reset(ctx, identifier); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to reset sign-in limiter")
		}
	}
	return l.fallback.Reset(ctx, identifier)
}
