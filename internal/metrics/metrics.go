// Package metrics declares the Prometheus collectors of the user registry.
// All collectors are registered on the default registry at init time and
// exposed by the HTTP API on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks handled requests by method, route pattern and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and route",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)

// Registry Metrics
var (
	// UsersCreatedTotal tracks successfully registered users
	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_users_created_total",
			Help: "Total users created",
		},
	)

	// UserCreateConflictsTotal tracks registrations rejected by a uniqueness constraint
	UserCreateConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_user_create_conflicts_total",
			Help: "Total user registrations rejected because username or email already exists",
		},
	)
)

// Database Metrics
var (
	// DBConfigFallback is 1 when database credentials came from the environment instead of Vault
	DBConfigFallback = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_db_config_fallback",
			Help: "1 if database credentials were taken from environment fallback, 0 if read from Vault",
		},
	)

	// DBUp reports the result of the last health probe (1=connected, 0=disconnected)
	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_db_up",
			Help: "1 if the last database health probe succeeded, 0 otherwise",
		},
	)

	// DBErrorsTotal tracks failed store operations by operation and retryability
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_db_errors_total",
			Help: "Total failed store operations by operation and classification",
		},
		[]string{"operation", "classification"},
	)
)
