// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booth_http_requests_total",
			Help: "HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booth_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HoldOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booth_hold_outcomes_total",
			Help: "Hold creation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	CheckoutOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booth_checkout_outcomes_total",
			Help: "Checkout attempts by outcome.",
		},
		[]string{"outcome"},
	)

	PaidUnbooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booth_paid_unbooked_total",
			Help: "Charges taken whose bookings could not be stored.",
		},
	)

	RefundFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booth_refund_failures_total",
			Help: "Compensating refunds that failed.",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booth_availability_cache_lookups_total",
			Help: "Availability cache lookups by result.",
		},
		[]string{"result"},
	)

	OutboxPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booth_outbox_jobs_total",
			Help: "Outbox jobs processed by result.",
		},
		[]string{"result"},
	)
)
