// Package metrics defines all custom Prometheus metrics for the storefront
// services and gateways. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Identity metrics ─────────────────────────────────────────────────────────

// TokenValidationsTotal counts token validation requests by result.
// Label:
//   - result: "valid" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of token validation requests, by result.",
	},
	[]string{"result"},
)

// ── Order metrics ────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts newly placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderTransitionsTotal counts successful status transitions.
// Label:
//   - target: the status the order moved to (e.g. "Accepted")
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of successful order status transitions, by target status.",
	},
	[]string{"target"},
)

// ── Gateway metrics ──────────────────────────────────────────────────────────

// BackendRequestsTotal counts outbound calls from a gateway to its backends.
// Labels:
//   - service: logical backend name ("identity", "order", "catalog", "buyer")
//   - outcome: "success" or the error code the call mapped to
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_backend_requests_total",
		Help:      "Total number of gateway-to-backend calls, by service and outcome.",
	},
	[]string{"service", "outcome"},
)

// BackendRequestDuration measures outbound call latency per backend.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_backend_request_duration_seconds",
		Help:      "Duration of gateway-to-backend calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service"},
)

// CompositeBranchesTotal counts settled branches of composite reads.
// Labels:
//   - branch: sub-result name ("profile", "address", "firstProducts")
//   - result: "ok" or "error"
var CompositeBranchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_composite_branches_total",
		Help:      "Total number of settled composite-read branches, by branch and result.",
	},
	[]string{"branch", "result"},
)

// TokenCacheTotal counts validation-cache lookups at the gateway.
// Label:
//   - result: "hit" or "miss"
var TokenCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_token_cache_total",
		Help:      "Total number of token-validation cache lookups, by result.",
	},
	[]string{"result"},
)
