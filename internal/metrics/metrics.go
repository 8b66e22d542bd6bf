// Package metrics provides Prometheus metrics for the chat backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveConnections tracks the number of open live-channel connections.
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "supchat_active_connections",
			Help: "Number of currently open websocket connections",
		},
	)

	// ExchangesTotal counts completed exchange cycles by outcome.
	ExchangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supchat_exchanges_total",
			Help: "Total number of exchange cycles, by outcome",
		},
		[]string{"outcome"},
	)

	// GatewayDuration tracks how long the language model takes to answer.
	GatewayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "supchat_gateway_duration_seconds",
			Help:    "Duration of response generation calls",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// MessagesStored counts persisted messages by sender.
	MessagesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supchat_messages_stored_total",
			Help: "Total number of persisted messages, by sender",
		},
		[]string{"sender"},
	)
)

// Exchange outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeFailure  = "failure"
)

// RecordConnectionOpened increments the open connection gauge.
func RecordConnectionOpened() {
	ActiveConnections.Inc()
}

// RecordConnectionClosed decrements the open connection gauge.
func RecordConnectionClosed() {
	ActiveConnections.Dec()
}

// RecordExchange counts an exchange cycle outcome.
func RecordExchange(outcome string) {
	ExchangesTotal.WithLabelValues(outcome).Inc()
}

// RecordGatewayCall observes a response generation call that started at start.
func RecordGatewayCall(start time.Time) {
	GatewayDuration.Observe(time.Since(start).Seconds())
}

// RecordMessageStored counts a persisted message.
func RecordMessageStored(sender string) {
	MessagesStored.WithLabelValues(sender).Inc()
}
