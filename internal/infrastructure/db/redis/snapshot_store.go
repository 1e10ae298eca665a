package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skywings/booking-system/internal/api/metrics"
	"github.com/skywings/booking-system/internal/core/domain"
)

// SnapshotStore is the durable local store: whole-collection snapshots held
// as plain string values under fixed keys, no TTL. Each Save replaces the
// previous snapshot atomically from the store's perspective.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore wraps the given Redis client.
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Load returns the snapshot under key, or domain.ErrSnapshotMissing when the
// key has never been written.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotMissing
		}
		return nil, fmt.Errorf("snapshot load %s: %w", key, err)
	}
	return raw, nil
}

// Save overwrites the snapshot under key.
func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		metrics.SnapshotWriteErrorsTotal.WithLabelValues(key).Inc()
		return fmt.Errorf("snapshot save %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
