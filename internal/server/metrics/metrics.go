// Package metrics holds the server's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveSubscriptions tracks live message-stream endpoints per channel.
	ActiveSubscriptions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gochat_active_subscriptions",
		Help: "Number of live message subscription endpoints per channel.",
	}, []string{"channel_id"})

	// BroadcastFailures counts deliveries that failed and were dropped.
	BroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gochat_broadcast_failures_total",
		Help: "Total message deliveries that failed and were skipped.",
	})

	// MessagesSent counts successfully persisted messages.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gochat_messages_sent_total",
		Help: "Total messages persisted and broadcast.",
	})
)
