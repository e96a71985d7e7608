// Package rediskv implements the key-value store on a Redis server.
package rediskv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"bodyprogress/internal/domain"
)

// DefaultPrefix namespaces the keys written by the store.
const DefaultPrefix = "bodyprogress::"

// Store reads and writes plain string keys below a prefix.
type Store struct {
	client *redis.Client
	prefix string
}

var _ domain.KeyValueStore = (*Store)(nil)

// New wraps an existing client.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Open connects to addr and pings the server.
func Open(ctx context.Context, addr, password string, db int, prefix string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return New(client, prefix), nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get reads prefix+key. A missing key reports ok=false.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set writes prefix+key with no expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
