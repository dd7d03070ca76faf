package domain

// Delivery vehicle as submitted with a solve request.
// Capacity is accepted at the boundary but not consulted when building a route.
type Vehicle struct {
	ID         string
	CapacityKg int
}
