// Package metrics defines and registers all custom Prometheus metrics for the
// console gateway. It is the single source of truth for metric names, labels,
// and help strings; registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// GuardDecisionsTotal counts route-guard evaluations by outcome.
// Labels:
//   - decision: "allow", "redirect_login", or "redirect_unauthorized"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route-guard evaluations, by decision.",
	},
	[]string{"decision"},
)

// SessionLoadsTotal counts session-load attempts by result.
// Label:
//   - result: "valid", "token_missing", "token_malformed", "token_expired",
//     "profile_fetch_failed", or "error"
var SessionLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_loads_total",
		Help:      "Total number of session load attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by result ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BackendRequestDuration measures latency of calls to the remote backend.
// Label:
//   - endpoint: "login" or "me"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the remote REST backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)
