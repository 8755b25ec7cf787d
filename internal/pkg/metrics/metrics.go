package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalerider_events_total",
		Help: "Transfer events entering the pipeline",
	}, []string{"source"})

	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalerider_rejections_total",
		Help: "Events that terminated before an alert, by reason",
	}, []string{"reason"})

	AlertsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whalerider_alerts_sent_total",
		Help: "Whale alerts broadcast to subscribers",
	})

	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalerider_deliveries_total",
		Help: "Per-subscriber delivery attempts",
	}, []string{"outcome"})

	OracleErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whalerider_oracle_errors_total",
		Help: "Failed chain oracle lookups, by call",
	}, []string{"call"})
)
