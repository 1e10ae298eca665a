// Package metrics defines and registers all custom Prometheus metrics for
// the SkyWings booking system. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skywings"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings created through the ledger.
// Label:
//   - class: the fare class booked (e.g. "Economy")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by fare class.",
	},
	[]string{"class"},
)

// BookingsCancelledTotal counts booking cancellations.
var BookingsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled.",
	},
)

// BookingsReconciledTotal counts Confirmed→Completed flips applied by the
// reconciliation sweep.
var BookingsReconciledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_reconciled_total",
		Help:      "Total number of bookings materialized as Completed.",
	},
)

// ── Flight metrics ────────────────────────────────────────────────────────────

// FlightsMutatedTotal counts flight directory mutations.
// Label:
//   - op: "add", "update" or "remove"
var FlightsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flights_mutated_total",
		Help:      "Total number of flight directory mutations, by operation.",
	},
	[]string{"op"},
)

// ── Directory sync metrics ────────────────────────────────────────────────────

// UserSyncTotal counts remote-directory write outcomes.
// Labels:
//   - op: "upsert" or "delete"
//   - result: "ok" or "error"
var UserSyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_sync_total",
		Help:      "Total number of remote user-directory writes, by operation and result.",
	},
	[]string{"op", "result"},
)

// SyncQueueDepth tracks the number of tasks waiting in each sync worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var SyncQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sync_queue_depth",
		Help:      "Current number of tasks pending in each sync worker channel.",
	},
	[]string{"worker_id"},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// SnapshotWriteErrorsTotal counts failed snapshot writes to the durable
// local store. Write failures never surface to callers; the counter is how
// they stay visible.
// Label:
//   - key: the snapshot key that failed
var SnapshotWriteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_write_errors_total",
		Help:      "Total number of failed snapshot writes to the durable local store.",
	},
	[]string{"key"},
)
