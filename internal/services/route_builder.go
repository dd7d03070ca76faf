package services

import (
	"math"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/ports"
)

// BuildRoute orders deliveries with a greedy nearest-neighbor heuristic.
//
// Starting at depot, each step scans every unvisited order in input order and
// moves to the one with the strictly smallest distance from the current
// position. Ties resolve to the order that appears first in the input. The
// route is open: there is no return leg to the depot.
//
// The scan performs n(n+1)/2 distance evaluations for n orders. orders is
// never modified.
func BuildRoute(orders []domain.Order, depot domain.Coordinates, metric ports.DistanceMetric) domain.Route {
	route := make(domain.Route, 0, len(orders))
	if len(orders) == 0 {
		return route
	}

	// Working set: visited[i] marks orders[i] as removed.
	visited := make([]bool, len(orders))
	current := depot

	for range orders {
		best := -1
		minDist := math.Inf(1)

		for i := range orders {
			if visited[i] {
				continue
			}
			d := metric.Distance(current, orders[i].Location())
			if best == -1 || d < minDist {
				minDist = d
				best = i
			}
		}

		visited[best] = true
		route = append(route, orders[best])
		current = orders[best].Location()
	}

	return route
}

// RouteDistanceKm returns the length of the open route starting at depot.
func RouteDistanceKm(route domain.Route, depot domain.Coordinates, metric ports.DistanceMetric) float64 {
	total := 0.0
	current := depot
	for _, o := range route {
		next := o.Location()
		total += metric.Distance(current, next)
		current = next
	}
	return total
}
