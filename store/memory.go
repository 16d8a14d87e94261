package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/watchcharts/chartkit/series"
)

// MemoryStore is an in-process Store. Saved series are cloned on the way in, so later
// changes to the caller's slice do not leak into the stash.
type MemoryStore struct {
	cache *cache.Cache
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore whose entries expire after ttl.
// A ttl <= 0 keeps entries until they are deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
	}

	return &MemoryStore{cache: cache.New(ttl, 2*ttl)}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, id string, s series.Series) error {
	m.cache.SetDefault(id, s.Clone())
	return nil
}

// Load implements Store. The returned series is shared with the store and must not be
// modified.
func (m *MemoryStore) Load(_ context.Context, id string) (series.Series, bool, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return nil, false, nil
	}
	s, _ := v.(series.Series)

	return s, true, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}

// Len returns the number of stashed series, including expired ones not yet evicted.
func (m *MemoryStore) Len() int {
	return m.cache.ItemCount()
}
