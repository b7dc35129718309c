package metrics

import (
	"context"

	"github.com/promptvault/prompt-library/internal/core/ports"
)

// InstrumentStore wraps a snapshot store so every write is counted in
// SnapshotWritesTotal. Reads and removes pass through untouched.
func InstrumentStore(inner ports.SnapshotStore) ports.SnapshotStore {
	return &instrumentedStore{inner: inner}
}

type instrumentedStore struct {
	inner ports.SnapshotStore
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, key)
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.inner.Set(ctx, key, value)
	result := "ok"
	if err != nil {
		result = "error"
	}
	SnapshotWritesTotal.WithLabelValues(key, result).Inc()
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}
