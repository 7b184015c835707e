package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// 1) Request volume by route and outcome
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// 2) Request latency
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Handler duration for HTTP requests.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})

	// 3) Concurrency (in flight)
	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_active_requests",
		Help: "Current number of in-flight requests.",
	})

	// 4) Domain events
	UsersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Users successfully created.",
	})

	ExercisesLoggedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exercises_logged_total",
		Help: "Exercises appended to a user's log.",
	})

	DecksClearedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decks_cleared_total",
		Help: "Authorized bulk deletes of all users.",
	})

	// 5) Store failures surfaced to clients
	StoreErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Store errors by operation, excluding not-found and conflicts.",
	}, []string{"operation"})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		ActiveRequests,
		UsersCreatedTotal,
		ExercisesLoggedTotal,
		DecksClearedTotal,
		StoreErrorsTotal,
	)
}
