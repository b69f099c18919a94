package embcache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/streamhound/discovery/internal/db"
)

// DefaultMemStoreSize bounds the in-process cache. The source of the
// embedding workload is repeated user queries, so a modest bound keeps the
// hot set resident without unbounded growth.
const DefaultMemStoreSize = 10000

// MemStore is an in-process LRU store for cached embeddings. Safe for
// concurrent use; the LRU guards its own state, and values are only ever
// replaced whole.
type MemStore struct {
	cache *lru.Cache[string, []byte]
}

// NewMemStore creates a bounded in-process store. A non-positive size uses
// DefaultMemStoreSize.
func NewMemStore(size int) *MemStore {
	if size <= 0 {
		size = DefaultMemStoreSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		// Unreachable with a positive size.
		cache, _ = lru.New[string, []byte](DefaultMemStoreSize)
	}
	return &MemStore{cache: cache}
}

// Get retrieves a value by key.
func (m *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.cache.Get(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return data, nil
}

// Set stores a value, evicting the least recently used entry at capacity.
func (m *MemStore) Set(_ context.Context, key string, value []byte) error {
	m.cache.Add(key, value)
	return nil
}

// Len returns the current number of cached entries.
func (m *MemStore) Len() int {
	return m.cache.Len()
}

// KVStore adapts a shared key-value store (Redis) to the cache store
// contract, optionally expiring entries. ttl <= 0 stores without expiry.
type KVStore struct {
	kv  db.KV
	ttl time.Duration
}

// NewKVStore wraps a db.KV for use as an embedding cache store.
func NewKVStore(kv db.KV, ttl time.Duration) *KVStore {
	return &KVStore{kv: kv, ttl: ttl}
}

// Get retrieves a value by key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.kv.Get(ctx, key)
}

// Set stores a value, with TTL when configured.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if s.ttl > 0 {
		return s.kv.SetWithTTL(ctx, key, value, s.ttl)
	}
	return s.kv.Set(ctx, key, value)
}
