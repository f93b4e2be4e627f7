package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// kvStore persists JSON documents by key with a sliding expiry.
type kvStore interface {
	get(ctx context.Context, key string, dst interface{}) error
	set(ctx context.Context, key string, value interface{}) error
	del(ctx context.Context, key string) error
}

// newKVStore uses Redis when a client is available and process memory otherwise.
func newKVStore(client *redis.Client, prefix string, ttl time.Duration) kvStore {
	if client == nil {
		return &memoryKV{prefix: prefix, ttl: ttl, items: make(map[string]memoryEntry), now: time.Now}
	}
	return &redisKV{client: client, prefix: prefix, ttl: ttl}
}

type redisKV struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (s *redisKV) get(ctx context.Context, key string, dst interface{}) error {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	return json.Unmarshal(data, dst)
}

func (s *redisKV) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *redisKV) del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryKV struct {
	mu     sync.Mutex
	prefix string
	ttl    time.Duration
	items  map[string]memoryEntry
	now    func() time.Time
}

func (s *memoryKV) get(ctx context.Context, key string, dst interface{}) error {
	s.mu.Lock()
	entry, ok := s.items[s.prefix+key]
	if ok && s.ttl > 0 && s.now().After(entry.expiresAt) {
		delete(s.items, s.prefix+key)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(entry.data, dst)
}

func (s *memoryKV) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.prefix+key] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryKV) del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, s.prefix+key)
	return nil
}
