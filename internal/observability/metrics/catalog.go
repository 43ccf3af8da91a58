package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"method", "path"},
	)

	CatalogRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_requests_in_flight",
			Help: "Number of catalog requests currently being processed",
		},
	)

	CatalogRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CatalogLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Total number of catalog lookups by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ReviewsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_upserted_total",
			Help: "Total number of reviews added or updated",
		},
	)

	ReviewsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_deleted_total",
			Help: "Total number of reviews deleted",
		},
	)
)
