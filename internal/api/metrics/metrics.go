// Package metrics defines and registers all custom Prometheus metrics for the
// leave-management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "leave_system"

// ── Leave metrics ─────────────────────────────────────────────────────────────

// LeavesAppliedTotal counts successfully stored leave requests.
// Label:
//   - leave_type: "PlannedLeave" or "EmergencyLeave"
var LeavesAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leaves_applied_total",
		Help:      "Total number of leave requests successfully stored.",
	},
	[]string{"leave_type"},
)

// LeaveRejectionsTotal counts leave applications rejected by validation.
// Label:
//   - reason: "invalid_input", "backdated", "inverted_range", "conflict"
var LeaveRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_rejections_total",
		Help:      "Total number of leave applications rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Password-reset metrics ────────────────────────────────────────────────────

// ResetCodesIssuedTotal counts issued one-time codes (including re-issues).
var ResetCodesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_codes_issued_total",
		Help:      "Total number of password-reset codes issued.",
	},
)

// ResetVerificationsTotal counts verification attempts by outcome.
// Label:
//   - result: "success", "expired", "invalid"
var ResetVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_verifications_total",
		Help:      "Total number of password-reset verification attempts, by result.",
	},
	[]string{"result"},
)

// ── Delivery metrics ──────────────────────────────────────────────────────────

// NotifyQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
