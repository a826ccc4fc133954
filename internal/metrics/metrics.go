package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Domain
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created",
		},
	)
	ExercisesLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_logged_total",
			Help: "Total exercises logged",
		},
	)
	LogQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercise_log_queries_total",
			Help: "Total exercise log queries answered",
		},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Requests rejected with a validation or not-found error",
		},
		[]string{"operation"}, // create_user|add_exercise
	)

	initOnce sync.Once
)

// Handler serves the default registry.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestLatency)
		prometheus.MustRegister(UsersCreated)
		prometheus.MustRegister(ExercisesLogged)
		prometheus.MustRegister(LogQueries)
		prometheus.MustRegister(ValidationFailures)
	})
}
