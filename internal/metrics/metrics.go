// Package metrics defines the Prometheus metrics recorded by the Warefy API
// client. Metrics register with the default registry on import; whoever owns
// the process decides whether to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warefy_client"

// ── Outbound request metrics ─────────────────────────────────────────────────

// RequestsTotal counts completed backend calls.
// Labels:
//   - group: resource group of the call (e.g. "inventory", "auth")
//   - method: HTTP method
//   - code: HTTP status code, or "error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, by resource group, method and status code.",
	},
	[]string{"group", "method", "code"},
)

// RequestDuration measures round-trip latency of backend calls.
// Label:
//   - group: resource group of the call
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Round-trip duration of backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"group"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - mode: "demo" or "backend"
//   - result: "success", "rejected", "transport_error" or "malformed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by mode and result.",
	},
	[]string{"mode", "result"},
)

// FanOutFallbacksTotal counts batch items replaced by their zero-valued fallback.
// Label:
//   - operation: the batch operation (e.g. "user_usage")
var FanOutFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_fallbacks_total",
		Help:      "Total number of fan-out items that failed and were replaced by a fallback value.",
	},
	[]string{"operation"},
)
