package services

import (
	"fmt"
	"math/rand"
	"route-solver-service/internal/adapters/distance"
	"route-solver-service/internal/domain"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var depot = domain.DefaultDepot().Location

func TestBuildRouteNearestFirst(t *testing.T) {
	orders := []domain.Order{
		{ID: "far", Latitude: 34.05, Longitude: -118.24, WeightKg: 10},
		{ID: "near", Latitude: 40.73, Longitude: -73.99, WeightKg: 3},
	}

	route := BuildRoute(orders, depot, distance.Haversine{})

	assert.Equal(t, []string{"near", "far"}, route.OrderIDs())
}

func TestBuildRouteEmpty(t *testing.T) {
	metric := distance.NewCountingMetric(nil)

	route := BuildRoute(nil, depot, metric)

	require.NotNil(t, route)
	assert.Empty(t, route)
	assert.Zero(t, metric.Calls())
}

func TestBuildRouteSingleOrder(t *testing.T) {
	order := domain.Order{ID: "only", Latitude: 41.88, Longitude: -87.63, WeightKg: 7}
	metric := distance.NewCountingMetric(nil)

	route := BuildRoute([]domain.Order{order}, depot, metric)

	require.Len(t, route, 1)
	assert.Equal(t, order, route[0])
	assert.Equal(t, 1, metric.Calls())
}

func TestBuildRouteTieBreaksByInputOrder(t *testing.T) {
	orders := []domain.Order{
		{ID: "second", Latitude: 42.36, Longitude: -71.06},
		{ID: "first", Latitude: 42.36, Longitude: -71.06},
		{ID: "third", Latitude: 42.36, Longitude: -71.06},
	}

	route := BuildRoute(orders, depot, distance.Haversine{})

	assert.Equal(t, []string{"second", "first", "third"}, route.OrderIDs())
}

func TestBuildRouteFollowsCurrentPosition(t *testing.T) {
	// From the depot B is closest, but after B the next hop is C, not A.
	orders := []domain.Order{
		{ID: "A", Latitude: 40.60, Longitude: -74.00},
		{ID: "B", Latitude: 40.75, Longitude: -74.00},
		{ID: "C", Latitude: 40.85, Longitude: -74.00},
	}

	route := BuildRoute(orders, depot, distance.Haversine{})

	assert.Equal(t, []string{"B", "C", "A"}, route.OrderIDs())
}

func TestBuildRouteUsesGivenDepot(t *testing.T) {
	orders := []domain.Order{
		{ID: "ny", Latitude: 40.73, Longitude: -73.99},
		{ID: "la", Latitude: 34.05, Longitude: -118.24},
	}
	laDepot := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}

	route := BuildRoute(orders, laDepot, distance.Haversine{})

	assert.Equal(t, []string{"la", "ny"}, route.OrderIDs())
}

func TestBuildRouteIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 5, 17, 60} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			orders := make([]domain.Order, n)
			for i := range orders {
				orders[i] = domain.Order{
					ID:        fmt.Sprintf("o%d", i),
					Latitude:  rng.Float64()*180 - 90,
					Longitude: rng.Float64()*360 - 180,
					WeightKg:  rng.Intn(50),
				}
			}
			original := slices.Clone(orders)
			metric := distance.NewCountingMetric(nil)

			route := BuildRoute(orders, depot, metric)

			require.Len(t, route, n)
			assert.ElementsMatch(t, original, []domain.Order(route))
			assert.Equal(t, original, orders, "input must not be mutated")
			assert.Equal(t, n*(n+1)/2, metric.Calls())

			seen := make(map[string]struct{}, n)
			for _, id := range route.OrderIDs() {
				_, dup := seen[id]
				assert.False(t, dup, "duplicate id %s", id)
				seen[id] = struct{}{}
			}
		})
	}
}

func TestRouteDistanceKm(t *testing.T) {
	orders := domain.Route{
		{ID: "near", Latitude: 40.73, Longitude: -73.99},
		{ID: "far", Latitude: 34.05, Longitude: -118.24},
	}

	got := RouteDistanceKm(orders, depot, distance.Haversine{})

	want := distance.HaversineKm(depot, orders[0].Location()) +
		distance.HaversineKm(orders[0].Location(), orders[1].Location())
	assert.InDelta(t, want, got, 1e-9)
	assert.Zero(t, RouteDistanceKm(nil, depot, distance.Haversine{}))
}
