// Package metrics defines and registers all custom Prometheus metrics for the
// ScreenHive platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default Prometheus registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "screenhive"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthSuccessTotal counts HTTP requests that bound an authentication context.
var AuthSuccessTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_success_total",
		Help:      "Total number of successfully authenticated HTTP requests.",
	},
)

// AuthFailuresTotal counts request authentication failures.
// Label:
//   - reason: short failure kind (e.g. "token_expired", "suspended", "banned")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed HTTP authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatHandshakesTotal counts STOMP CONNECT attempts.
// Label:
//   - result: "accepted", "missing_credential", "invalid_credential", "forbidden_role"
var ChatHandshakesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_handshakes_total",
		Help:      "Total number of chat connection handshakes, by result.",
	},
	[]string{"result"},
)

// ChatConnectionsActive tracks currently established chat connections.
var ChatConnectionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_connections_active",
		Help:      "Number of currently established chat connections.",
	},
)

// ChatFramesTotal counts STOMP frames processed after the handshake.
// Labels:
//   - command: the STOMP command (e.g. "SEND", "SUBSCRIBE")
//   - result: "ok" or "denied"
var ChatFramesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_frames_total",
		Help:      "Total number of chat frames processed, by command and result.",
	},
	[]string{"command", "result"},
)
