package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/ports"
)

// Snapshot keys in the durable local store.
const (
	KeyFlights     = "sw:flights:v1"
	KeyBookings    = "sw:bookings:v1"
	KeyRoles       = "sw:roles:v1"
	KeyMockSession = "sw:mock_session:v1"
)

// loadSnapshot unmarshals the snapshot under key into v. It returns false
// when the store is absent, the key missing, or the payload unparseable —
// callers fall back to their seed data in all three cases.
func loadSnapshot(ctx context.Context, store ports.SnapshotStore, log zerolog.Logger, key string, v any) bool {
	if store == nil {
		return false
	}
	raw, err := store.Load(ctx, key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("snapshot not loaded")
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("snapshot unparseable, using seed data")
		return false
	}
	return true
}

// persistSnapshot overwrites the snapshot under key with the serialized v.
// Failures are logged and swallowed: state stays correct in memory for the
// session but will not survive a restart.
func persistSnapshot(ctx context.Context, store ports.SnapshotStore, log zerolog.Logger, key string, v any) {
	if store == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("snapshot marshal failed")
		return
	}
	if err := store.Save(ctx, key, raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("snapshot write failed")
	}
}
