package ports

import "route-solver-service/internal/domain"

// Contract for computing the distance in kilometers between two positions.
// Implementations must be pure: same inputs, same result, no side effects
// visible to other callers.
type DistanceMetric interface {
	// Return the distance from one position to another, in kilometers.
	Distance(from domain.Coordinates, to domain.Coordinates) float64
}
