// Package metrics declares the service's Prometheus instruments. Counters
// are incremented at the edges where the events surface: the notifier for
// status changes, the generation worker for render outcomes, and the
// delivery paths for delivery outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docflow_status_transitions_total",
		Help: "Total number of order status transitions, by source and target status.",
	},
		[]string{"from", "to"},
	)

	OverridesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docflow_manual_overrides_total",
		Help: "Total number of manual override transitions applied.",
	})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docflow_generations_total",
		Help: "Total number of document generation runs, by outcome.",
	},
		[]string{"outcome"},
	)

	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docflow_deliveries_total",
		Help: "Total number of delivery attempts, by outcome.",
	},
		[]string{"outcome"},
	)
)
