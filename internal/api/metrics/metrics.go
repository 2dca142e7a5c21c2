// Package metrics defines and registers all custom Prometheus metrics for the
// care portal. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; HTTP metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careportal"

// Login outcomes used as the "outcome" label of LoginAttemptsTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeMissingField = "missing_field"
	OutcomeInvalid      = "invalid_credentials"
	OutcomeLocked       = "locked"
	OutcomeInProgress   = "in_progress"
	OutcomeDiscarded    = "discarded"
	OutcomeError        = "error"
)

// ── Authentication ────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login submissions.
// Label:
//   - outcome: one of the Outcome* constants
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login submissions, by outcome.",
	},
	[]string{"outcome"},
)

// RoleRoutesTotal counts successful logins routed to a dashboard.
// Label:
//   - role: "admin", "manager" or "provider"
var RoleRoutesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_routes_total",
		Help:      "Total number of post-login navigations, by role.",
	},
	[]string{"role"},
)

// LogoutsTotal counts confirmed logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of confirmed logouts.",
	},
)

// ── Schedule ──────────────────────────────────────────────────────────────────

// ScheduleQueriesTotal counts schedule screen renders.
// Labels:
//   - date: Today, Tomorrow, Yesterday or All
//   - status: all, scheduled or completed
var ScheduleQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedule_queries_total",
		Help:      "Total number of schedule queries, by selectors.",
	},
	[]string{"date", "status"},
)

// ── Audit ─────────────────────────────────────────────────────────────────────

// AuditEventsDroppedTotal counts audit events discarded because the
// dispatcher was full or closed.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped before reaching the sink.",
	},
)
