// Package storage provides the durable string slots cart state is written to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a slot has never been written
var ErrNotFound = errors.New("slot not found")

// LocalStorage is a string-keyed slot store scoped to one browsing session
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// MemoryStorage keeps slots in process memory
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem returns the slot value or ErrNotFound
func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// SetItem overwrites the slot value
func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// RedisStorage keeps one session's slots under storefront:session:<id>:<slot>
type RedisStorage struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedisStorage creates a Redis-backed storage for a session. A zero ttl keeps keys forever.
func NewRedisStorage(client *redis.Client, sessionID string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client:    client,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (s *RedisStorage) key(slot string) string {
	return fmt.Sprintf("storefront:session:%s:%s", s.sessionID, slot)
}

// GetItem returns the slot value or ErrNotFound
func (s *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// SetItem overwrites the slot value and refreshes its expiry
func (s *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
