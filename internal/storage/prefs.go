package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// SQLitePrefs exposes the prefs table as a core.Prefs. Read errors are logged
// and reported as a missing key.
type SQLitePrefs struct {
	store  *Store
	logger *log.Logger
}

// Prefs returns the store's preference table. A nil logger discards errors.
func (s *Store) Prefs(logger *log.Logger) *SQLitePrefs {
	return &SQLitePrefs{store: s, logger: logger}
}

// Get implements core.Prefs.
func (p *SQLitePrefs) Get(key string) (string, bool) {
	v, ok, err := p.store.Pref(key)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("pref read failed", "key", key, "err", err)
		}
		return "", false
	}
	return v, ok
}

// Set implements core.Prefs.
func (p *SQLitePrefs) Set(key, value string) error {
	return p.store.SetPref(key, value)
}

// DefaultRedisTimeout bounds every Redis round trip.
const DefaultRedisTimeout = 500 * time.Millisecond

// RedisPrefs keeps preference scalars in Redis under a key prefix.
type RedisPrefs struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisPrefs connects to addr and verifies the connection.
func NewRedisPrefs(ctx context.Context, addr, prefix string) (*RedisPrefs, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", addr, err)
	}

	return &RedisPrefs{client: client, prefix: prefix, timeout: DefaultRedisTimeout}, nil
}

// Get implements core.Prefs. Errors other than a missing key are reported as
// a missing key too.
func (p *RedisPrefs) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	v, ok, err := p.Lookup(ctx, key)
	if err != nil {
		return "", false
	}
	return v, ok
}

// Lookup is Get with the error exposed. A missing key is not an error.
func (p *RedisPrefs) Lookup(ctx context.Context, key string) (string, bool, error) {
	v, err := p.client.Get(ctx, p.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read pref %q: %w", key, err)
	}
	return v, true, nil
}

// Set implements core.Prefs.
func (p *RedisPrefs) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.client.Set(ctx, p.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot write pref %q: %w", key, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (p *RedisPrefs) Close() error {
	return p.client.Close()
}

// MemoryPrefs keeps preference scalars for the life of the process.
type MemoryPrefs struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPrefs returns an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]string)}
}

// Get implements core.Prefs.
func (p *MemoryPrefs) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Set implements core.Prefs.
func (p *MemoryPrefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return nil
}

var (
	_ core.Prefs = (*SQLitePrefs)(nil)
	_ core.Prefs = (*RedisPrefs)(nil)
	_ core.Prefs = (*MemoryPrefs)(nil)
)
