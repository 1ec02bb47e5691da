// Package session stores opaque server-side sessions. A session maps a
// random token, delivered to browsers as an HttpOnly cookie, to the
// authenticated account id. The primary backend is Redis so sessions
// survive restarts; an in-process fallback keeps single-node dev
// setups working when no Redis server is reachable.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token does not resolve to a live
// session, either because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. All operations take the raw opaque token.
type Store interface {
	// Put associates token with accountID for the duration of ttl.
	Put(ctx context.Context, token string, accountID uint64, ttl time.Duration) error
	// Get resolves a token to the account id it was issued for.
	Get(ctx context.Context, token string) (uint64, error)
	// Delete revokes a session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with per-key TTLs.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore constructs a RedisStore on the given client.
func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Put(ctx context.Context, token string, accountID uint64, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+token, accountID, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint64, error) {
	id, err := s.rdb.Get(ctx, keyPrefix+token).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// MemoryStore is the single-process fallback used when Redis is not
// available. Expiry is checked lazily on read; there is no background
// sweeper, so abandoned entries live until the next Get.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	accountID uint64
	expiresAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(ctx context.Context, token string, accountID uint64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{accountID: accountID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (uint64, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return e.accountID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
