package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "activities_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total number of signup attempts",
		},
		[]string{"outcome"},
	)

	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_unregisters_total",
			Help: "Total number of unregister attempts",
		},
		[]string{"outcome"},
	)
)
