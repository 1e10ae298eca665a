package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

type recordingRemote struct {
	mu        sync.Mutex
	upserts   []string
	deletes   []string
	upsertErr error
}

func (r *recordingRemote) List(_ context.Context) ([]domain.User, error) { return nil, nil }

func (r *recordingRemote) Upsert(_ context.Context, id string, _ domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserts = append(r.upserts, id)
	return nil
}

func (r *recordingRemote) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes = append(r.deletes, id)
	return nil
}

func (r *recordingRemote) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.upserts), len(r.deletes)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcher_ProcessesUpsertsAndDeletes(t *testing.T) {
	remote := &recordingRemote{}
	d := NewDispatcher(2, remote, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.UserSyncTask{Op: ports.SyncUpsert, UserID: "USR-001", User: domain.User{ID: "USR-001"}})
	d.Enqueue(ports.UserSyncTask{Op: ports.SyncUpsert, UserID: "USR-002", User: domain.User{ID: "USR-002"}})
	d.Enqueue(ports.UserSyncTask{Op: ports.SyncDelete, UserID: "USR-001"})

	waitFor(t, func() bool {
		up, del := remote.counts()
		return up == 2 && del == 1
	})
}

func TestDispatcher_ShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingRemote{}, zerolog.Nop())

	first := d.shardIndex("USR-042")
	for i := 0; i < 10; i++ {
		if d.shardIndex("USR-042") != first {
			t.Fatal("same user id must always map to the same worker")
		}
	}
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	remote := &recordingRemote{upsertErr: errors.New("backend down")}
	d := NewDispatcher(1, remote, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Must not panic or block; a later task still gets processed.
	d.Enqueue(ports.UserSyncTask{Op: ports.SyncUpsert, UserID: "USR-001"})
	d.Enqueue(ports.UserSyncTask{Op: ports.SyncDelete, UserID: "USR-001"})

	waitFor(t, func() bool {
		_, del := remote.counts()
		return del == 1
	})
}

func TestNewDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingRemote{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
