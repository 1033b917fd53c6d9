// Package metrics holds the prometheus collectors shared by services and HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Balance changes by transaction type and outcome code",
		},
		[]string{"type", "outcome"},
	)

	LedgerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Duration of balance changes including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"type"},
	)

	TripCascades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_trip_cascades_total",
			Help: "Trip status cascades triggered by ledger transactions",
		},
		[]string{"type", "result"},
	)

	TripTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_status_transitions_total",
			Help: "Requested trip status changes by outcome code",
		},
		[]string{"outcome"},
	)

	WorkSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "work_session_operations_total",
			Help: "Driver work session starts and ends by outcome code",
		},
		[]string{"operation", "outcome"},
	)

	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Payment provider webhook deliveries by result",
		},
		[]string{"result"},
	)

	KafkaPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_kafka_publish_errors_total",
			Help: "Transaction events that could not be published",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
