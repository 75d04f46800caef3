// Package metrics defines and registers the custom Prometheus metrics of the
// newsroom API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is imported; HTTP latency and status metrics come from the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsroom"

// ── Content metrics ───────────────────────────────────────────────────────────

// ContentCreatedTotal counts successfully created rows.
// Label:
//   - kind: "news", "comment" or "user"
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of created news, comments and users.",
	},
	[]string{"kind"},
)

// ContentDeletedTotal counts successful delete requests. Cascaded children
// are not counted.
// Label:
//   - kind: "news", "comment" or "user"
var ContentDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_deleted_total",
		Help:      "Total number of delete requests that removed a row.",
	},
	[]string{"kind"},
)

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessDeniedTotal counts requests rejected with 403.
// Label:
//   - method: HTTP method of the rejected request
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected for insufficient rights.",
	},
	[]string{"method"},
)

// AuthFailuresTotal counts rejected credentials.
// Label:
//   - scheme: "bearer", "basic" or "login"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected credentials, by scheme.",
	},
	[]string{"scheme"},
)

// RegistrationsTotal counts self-registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful self-registrations.",
	},
)
