package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/goleak"

	"bodyprogress/internal/adapter/memory"
	"bodyprogress/internal/app"
	"bodyprogress/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errDiskFull = errors.New("disk full")

// mockKV wraps an in-memory store and lets tests override single calls.
type mockKV struct {
	db    *memory.DB
	getFn func(ctx context.Context, key string) ([]byte, bool, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func newMockKV() *mockKV {
	return &mockKV{db: memory.New()}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return m.db.Get(ctx, key)
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return m.db.Set(ctx, key, value)
}

// fixedClock returns a clock frozen at noon local time on day.
func fixedClock(day string) func() time.Time {
	d, err := time.ParseInLocation(domain.DayLayout, day, time.Local)
	if err != nil {
		panic(err)
	}
	t := d.Add(12 * time.Hour)
	return func() time.Time { return t }
}

// sequentialIDs returns ids "id-1", "id-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, kv domain.KeyValueStore, opts app.StoreOptions) *app.Store {
	t.Helper()
	if opts.Now == nil {
		opts.Now = fixedClock("2026-03-04")
	}
	if opts.NewID == nil {
		opts.NewID = sequentialIDs()
	}
	return app.NewStore(context.Background(), kv, opts)
}
