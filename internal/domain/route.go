package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// Represents the visiting order for a single vehicle.
// Insertion order is visiting order. A Route is always a permutation
// of the orders it was built from.
type Route []Order

// Return order identifiers in visiting order.
func (r Route) OrderIDs() []string {
	ids := make([]string, 0, len(r))
	for _, o := range r {
		ids = append(ids, o.ID)
	}
	return ids
}

func (r Route) TotalWeightKg() int {
	total := 0
	for _, o := range r {
		total += o.WeightKg
	}
	return total
}

// Bound returns the bounding box of all stops. An empty route has an empty bound.
func (r Route) Bound() orb.Bound {
	if len(r) == 0 {
		return orb.Bound{}
	}

	mp := make(orb.MultiPoint, 0, len(r))
	for _, o := range r {
		mp = append(mp, o.Location().Point())
	}
	return mp.Bound()
}

// Describes a solved route for downstream consumers (dispatch dashboards, audit).
// Bounds are [minLon, minLat, maxLon, maxLat].
type RouteSolvedEvent struct {
	EventID       string     `json:"eventId"`
	RequestID     string     `json:"requestId,omitempty"`
	DepotID       string     `json:"depotId"`
	OrderIDs      []string   `json:"orderIds"`
	TotalWeightKg int        `json:"totalWeightKg"`
	DistanceKm    float64    `json:"distanceKm"`
	Bounds        [4]float64 `json:"bounds"`
	SolvedAt      time.Time  `json:"solvedAt"`
}
