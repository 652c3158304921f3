// Package metrics defines and registers the custom Prometheus metrics for the
// restaurant API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts on protected routes.
// Labels:
//   - verifier: which verification path decided ("provider", "legacy", "none")
//   - result: "ok", "missing_token", "invalid_token", "resolution_error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of bearer-token authentication attempts.",
	},
	[]string{"verifier", "result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts created orders by source ("POS", "UberEats", …).
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by source.",
	},
	[]string{"source"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookEventsTotal counts delivery-platform webhook events.
// Labels:
//   - provider: "UberEats" or "DoorDash"
//   - result: "processed", "duplicate", "error"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of delivery-platform webhook events, by result.",
	},
	[]string{"provider", "result"},
)

// WebhookQueueDepth tracks events waiting in each dispatcher worker channel.
var WebhookQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "webhook_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// WebhookProcessingDuration measures end-to-end processing of a single event.
var WebhookProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "webhook_processing_duration_seconds",
		Help:      "Duration of webhook event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)
