package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LayoutComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_layout_computations_total",
			Help: "Gallery layouts computed, by breakpoint and cache outcome.",
		},
		[]string{"breakpoint", "cache"},
	)

	PreloadResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_preload_results_total",
			Help: "Preloaded asset URLs by outcome.",
		},
		[]string{"outcome"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by final status.",
		},
		[]string{"status"},
	)
)
