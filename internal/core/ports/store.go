package ports

import "context"

// SnapshotStore is the durable local key-value store. Each collection is
// persisted as one whole serialized snapshot under a fixed key, overwritten
// on every mutation and read once at startup.
type SnapshotStore interface {
	// Load returns the snapshot stored under key, or domain.ErrSnapshotMissing
	// when the key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
