// Package metrics exposes the server's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AlertsReceived counts every hit on /send_alert, accepted or not.
	AlertsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guardian_alerts_received_total",
		Help: "Number of alert requests received from devices.",
	})

	// AlertsForwarded counts alerts delivered to Telegram.
	AlertsForwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guardian_alerts_forwarded_total",
		Help: "Number of alerts successfully forwarded to Telegram.",
	})

	// DeliveryFailures counts failed Telegram deliveries.
	DeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guardian_delivery_failures_total",
		Help: "Number of alerts that could not be delivered to Telegram.",
	})

	// LocationLookups counts enrichment attempts by outcome
	// (resolved or unresolved).
	LocationLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guardian_location_lookups_total",
		Help: "Number of Wi-Fi location lookups by outcome.",
	}, []string{"outcome"})
)
