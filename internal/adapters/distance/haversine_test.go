package distance

import (
	"math"
	"route-solver-service/internal/domain"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

var (
	newYork    = domain.Coordinates{Lat: 40.7128, Lon: -74.0060}
	losAngeles = domain.Coordinates{Lat: 34.0522, Lon: -118.2437}
)

func TestHaversineSamePointIsZero(t *testing.T) {
	points := []domain.Coordinates{
		newYork,
		losAngeles,
		{Lat: 0, Lon: 0},
		{Lat: -90, Lon: 180},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, HaversineKm(p, p), "distance(%v, %v)", p, p)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{newYork, losAngeles},
		{{Lat: 51.5074, Lon: -0.1278}, {Lat: -33.8688, Lon: 151.2093}},
		{{Lat: 10, Lon: 179.9}, {Lat: 10, Lon: -179.9}},
	}

	for _, p := range pairs {
		ab := HaversineKm(p[0], p[1])
		ba := HaversineKm(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 0.0)
	}
}

func TestHaversineNewYorkToLosAngeles(t *testing.T) {
	d := Haversine{}.Distance(newYork, losAngeles)
	assert.InDelta(t, 3936.0, d, 10.0)
}

func TestHaversineMatchesOrbWithinRadiusRatio(t *testing.T) {
	// orb/geo uses the equatorial radius, so results differ only by the radius ratio.
	orbKm := geo.DistanceHaversine(newYork.Point(), losAngeles.Point()) / 1000
	ratio := orb.EarthRadius / 1000 / EarthRadiusKm

	assert.InDelta(t, orbKm, HaversineKm(newYork, losAngeles)*ratio, 0.5)
}

func TestHaversineOutOfRangeIsFinite(t *testing.T) {
	d := HaversineKm(domain.Coordinates{Lat: 120, Lon: 500}, newYork)

	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestCountingMetric(t *testing.T) {
	m := NewCountingMetric(nil)
	assert.Zero(t, m.Calls())

	d := m.Distance(newYork, losAngeles)
	m.Distance(newYork, newYork)

	assert.Equal(t, 2, m.Calls())
	assert.Equal(t, HaversineKm(newYork, losAngeles), d)
}

func TestHaversineAntipodesIsFinite(t *testing.T) {
	d := HaversineKm(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 180})

	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}
