package app

import (
	"context"
	"encoding/json"
	"fmt"

	"bodyprogress/internal/domain"
)

// LoadJSON reads key and decodes it into a T. A key that was never written
// yields def with no error. A value that cannot be read or decoded yields def
// together with an error wrapping domain.ErrPersistenceRead; the stored value
// is left untouched.
func LoadJSON[T any](ctx context.Context, kv domain.KeyValueStore, key string, def T) (T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("%w: get %q: %w", domain.ErrPersistenceRead, key, err)
	}
	if !ok || len(raw) == 0 {
		return def, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, fmt.Errorf("%w: decode %q: %w", domain.ErrPersistenceRead, key, err)
	}
	return v, nil
}

// SaveJSON encodes v and overwrites key with it.
func SaveJSON(ctx context.Context, kv domain.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", domain.ErrPersistenceWrite, key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: set %q: %w", domain.ErrPersistenceWrite, key, err)
	}
	return nil
}
