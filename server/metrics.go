package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for searchesTotal.
const (
	resultFound      = "found"
	resultNoRoute    = "no_route"
	resultBadRequest = "bad_request"
)

type metrics struct {
	searchesTotal  *prometheus.CounterVec
	searchDuration prometheus.Histogram
	expandedNodes  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		searchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridroute_searches_total",
			Help: "Total route requests by result",
		}, []string{"result"}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_search_duration_seconds",
			Help:    "A* search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		expandedNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridroute_expanded_nodes",
			Help:    "Cells expanded per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}
