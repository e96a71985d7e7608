// Package cache adds an in-process read cache in front of a key-value store.
package cache

import (
	"context"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"bodyprogress/internal/domain"
)

// minimum size freecache accepts
const minSize = 512 * 1024

// Store caches values read from and written to the wrapped store. Values
// larger than the cache can hold are passed through uncached.
type Store struct {
	next  domain.KeyValueStore
	cache *freecache.Cache
}

var _ domain.KeyValueStore = (*Store)(nil)

// New wraps next with a cache of sizeBytes.
func New(next domain.KeyValueStore, sizeBytes int) *Store {
	if sizeBytes < minSize {
		sizeBytes = minSize
	}
	return &Store{
		next:  next,
		cache: freecache.NewCache(sizeBytes),
	}
}

// Get serves key from the cache, falling back to the wrapped store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("cache: hit %s", key)
		return b, true, nil
	}

	b, ok, err := s.next.Get(ctx, key)
	if err != nil || !ok {
		return b, ok, err
	}
	s.fill(key, b)
	return b, true, nil
}

// Set writes through to the wrapped store. The cached copy is dropped when
// the write fails.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	s.fill(key, value)
	return nil
}

func (s *Store) fill(key string, value []byte) {
	if err := s.cache.Set([]byte(key), value, 0); err != nil {
		log.Debugf("cache: not caching %s: %s", key, err)
		s.cache.Del([]byte(key))
	}
}

// HitRate returns the ratio of cache hits to lookups.
func (s *Store) HitRate() float64 {
	return s.cache.HitRate()
}
