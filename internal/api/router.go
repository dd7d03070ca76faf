package api

import (
	"net/http"
	"route-solver-service/internal/api/handlers"
	"route-solver-service/internal/platform/metrics"
	"route-solver-service/internal/ports"
	"route-solver-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	ServiceName    string
	MaxBodyBytes   int64
	SolveRateLimit float64
	SolveRateBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(solver *services.Solver, depots ports.DepotRepository, opts Options) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	statusHandler := &handlers.StatusHandler{ServiceName: opts.ServiceName}
	solveHandler := &handlers.SolveHandler{
		Solver:       solver,
		MaxBodyBytes: opts.MaxBodyBytes,
	}
	depotHandler := &handlers.DepotHandler{Repo: depots}

	mux.HandleFunc("/", statusHandler.Status)
	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/solve", rateLimit(opts.SolveRateLimit, opts.SolveRateBurst, http.HandlerFunc(solveHandler.Solve)))
	mux.HandleFunc("/depots", depotHandler.List)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
