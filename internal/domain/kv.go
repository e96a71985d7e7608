package domain

import "context"

// Persisted keys. Each holds one JSON document that is rewritten in full on
// every mutation of its collection.
const (
	KeyEntries = "dataEntries"
	KeyTargets = "targets"
	KeyPhotos  = "photos"
)

// KeyValueStore is the port for local key-value persistence.
// Get reports ok=false when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
