package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RouteSolves counts solve calls by outcome (ok, unknown_depot, too_many_orders, error).
	RouteSolves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_solves_total", Help: "Route solve calls by outcome."},
		[]string{"outcome"},
	)
	// RouteOrders observes the number of orders per successful solve.
	RouteOrders = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_solve_orders", Help: "Orders per solved route.", Buckets: prometheus.ExponentialBuckets(1, 4, 8)},
	)
	// DistanceEvaluations counts haversine evaluations performed by the route builder.
	DistanceEvaluations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_distance_evaluations_total", Help: "Distance evaluations performed while building routes."},
	)
	// SolveDuration records route construction time in seconds.
	SolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_solve_duration_seconds", Help: "Route construction duration in seconds.", Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10)},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RouteSolves)
		Registry.MustRegister(RouteOrders)
		Registry.MustRegister(DistanceEvaluations)
		Registry.MustRegister(SolveDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
