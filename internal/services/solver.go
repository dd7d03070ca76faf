package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-solver-service/internal/adapters/distance"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/platform/metrics"
	"route-solver-service/internal/platform/obs"
	"route-solver-service/internal/ports"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownDepot  = errors.New("unknown depot")
	ErrTooManyOrders = errors.New("too many orders")
)

type SolveRequest struct {
	DepotID  string
	Orders   []domain.Order
	Vehicles []domain.Vehicle
}

type SolveResult struct {
	Depot               domain.Depot
	Route               domain.Route
	DistanceKm          float64
	DistanceEvaluations int
}

type SolverConfig struct {
	DefaultDepotID string
	// MaxOrders caps the input size of a single solve; 0 disables the cap.
	MaxOrders int
}

// Solver is the single-route use case behind POST /solve.
// It holds no per-request state and is safe for concurrent use.
type Solver struct {
	depots    ports.DepotRepository
	publisher ports.RoutePublisher
	metric    ports.DistanceMetric
	cfg       SolverConfig
}

func NewSolver(
	depots ports.DepotRepository,
	publisher ports.RoutePublisher,
	metric ports.DistanceMetric,
	cfg SolverConfig,
) (*Solver, error) {
	if depots == nil {
		return nil, errors.New("new solver: depot repository must be non-nil")
	}

	if metric == nil {
		metric = distance.Haversine{}
	}

	if strings.TrimSpace(cfg.DefaultDepotID) == "" {
		cfg.DefaultDepotID = domain.DefaultDepotID
	}

	if cfg.MaxOrders < 0 {
		return nil, fmt.Errorf("new solver: max orders must be >= 0, got %d", cfg.MaxOrders)
	}

	return &Solver{
		depots:    depots,
		publisher: publisher,
		metric:    metric,
		cfg:       cfg,
	}, nil
}

// Solve resolves the depot and builds a nearest-neighbor route over a private
// copy of req.Orders. Vehicles are accepted but not consulted.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (_ *SolveResult, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)

	outcome := "error"
	defer func() { metrics.RouteSolves.WithLabelValues(outcome).Inc() }()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	if s.cfg.MaxOrders > 0 && len(req.Orders) > s.cfg.MaxOrders {
		outcome = "too_many_orders"
		return nil, fmt.Errorf("solve: %w: %d > %d", ErrTooManyOrders, len(req.Orders), s.cfg.MaxOrders)
	}

	depotID := strings.TrimSpace(req.DepotID)
	if depotID == "" {
		depotID = s.cfg.DefaultDepotID
	}

	depot, err := s.depots.GetDepot(ctx, depotID)
	if err != nil {
		if errors.Is(err, ports.ErrDepotNotFound) {
			outcome = "unknown_depot"
			return nil, fmt.Errorf("solve: %w %q", ErrUnknownDepot, depotID)
		}
		return nil, fmt.Errorf("solve: get depot %q: %w", depotID, err)
	}

	// The builder never mutates its input, but concurrent callers may reuse
	// their slices once Solve returns.
	orders := slices.Clone(req.Orders)

	counter := distance.NewCountingMetric(s.metric)
	start := time.Now()
	route := BuildRoute(orders, depot.Location, counter)
	metrics.SolveDuration.Observe(time.Since(start).Seconds())

	evaluations := counter.Calls()
	distanceKm := RouteDistanceKm(route, depot.Location, s.metric)

	metrics.RouteOrders.Observe(float64(len(route)))
	metrics.DistanceEvaluations.Add(float64(evaluations))
	outcome = "ok"

	log.Printf(
		"req_id=%s solve depot=%s orders=%d vehicles=%d evaluations=%d distance_km=%.3f",
		obs.RequestID(ctx), depot.ID, len(route), len(req.Vehicles), evaluations, distanceKm,
	)

	s.publish(ctx, depot, route, distanceKm)

	return &SolveResult{
		Depot:               depot,
		Route:               route,
		DistanceKm:          distanceKm,
		DistanceEvaluations: evaluations,
	}, nil
}

// publish is best effort: a failed notification never fails the solve.
func (s *Solver) publish(ctx context.Context, depot domain.Depot, route domain.Route, distanceKm float64) {
	if s.publisher == nil {
		return
	}

	b := route.Bound()
	evt := domain.RouteSolvedEvent{
		EventID:       uuid.NewString(),
		RequestID:     obs.RequestID(ctx),
		DepotID:       depot.ID,
		OrderIDs:      route.OrderIDs(),
		TotalWeightKg: route.TotalWeightKg(),
		DistanceKm:    distanceKm,
		Bounds:        [4]float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()},
		SolvedAt:      time.Now().UTC(),
	}

	if err := s.publisher.PublishRouteSolved(ctx, evt); err != nil {
		log.Printf("req_id=%s route event publish failed: %v", evt.RequestID, err)
	}
}
