package ports

import "github.com/skywings/booking-system/internal/core/domain"

// SyncOp identifies the kind of remote-directory write a task performs.
type SyncOp string

const (
	SyncUpsert SyncOp = "upsert"
	SyncDelete SyncOp = "delete"
)

// UserSyncTask is one best-effort remote-directory write, decoupled from the
// local mutation that produced it.
type UserSyncTask struct {
	Op     SyncOp
	UserID string
	User   domain.User // populated for upserts
}

// SyncQueue accepts fire-and-forget remote-directory writes. Enqueue never
// blocks the caller beyond channel capacity and never reports task failure.
type SyncQueue interface {
	Enqueue(task UserSyncTask)
}
