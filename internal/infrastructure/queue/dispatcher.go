package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/api/metrics"
	"github.com/skywings/booking-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes remote-directory writes to a fixed set of workers using
// consistent hashing on the user id, guaranteeing per-user write ordering.
// Task failures are logged and counted, never surfaced to the enqueuer — the
// local state change that produced the task has already been applied.
type Dispatcher struct {
	workers []chan ports.UserSyncTask
	remote  ports.RemoteDirectory
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, remote ports.RemoteDirectory, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.UserSyncTask, numWorkers),
		remote:  remote,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.UserSyncTask, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a task to the worker responsible for its user id. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(task ports.UserSyncTask) {
	idx := d.shardIndex(task.UserID)
	d.workers[idx] <- task
	metrics.SyncQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.UserSyncTask) {
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, id, task)
			metrics.SyncQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, workerID int, task ports.UserSyncTask) {
	var err error
	switch task.Op {
	case ports.SyncDelete:
		err = d.remote.Delete(ctx, task.UserID)
	default:
		err = d.remote.Upsert(ctx, task.UserID, task.User)
	}

	if err != nil {
		metrics.UserSyncTotal.WithLabelValues(string(task.Op), "error").Inc()
		d.log.Warn().Err(err).
			Str("user_id", task.UserID).
			Str("op", string(task.Op)).
			Int("worker_id", workerID).
			Msg("remote directory sync failed")
		return
	}
	metrics.UserSyncTotal.WithLabelValues(string(task.Op), "ok").Inc()
}
