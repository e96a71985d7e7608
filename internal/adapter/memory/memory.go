// Package memory implements an in-memory key-value store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"bodyprogress/internal/domain"
)

// DB implements an in-memory key-value storage.
type DB struct {
	mu     sync.Mutex
	values map[string][]byte
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		values: make(map[string][]byte),
	}
}

// Ensure interfaces are met.
var _ domain.KeyValueStore = (*DB)(nil)

// Get returns a copy of the value stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key, replacing any previous value.
func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.values[key] = append([]byte(nil), value...)
	return nil
}

// Keys lists the stored keys in lexical order.
func (db *DB) Keys() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	keys := make([]string, 0, len(db.values))
	for k := range db.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
