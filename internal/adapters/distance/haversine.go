package distance

import (
	"math"
	"route-solver-service/internal/domain"
)

// Mean Earth radius used for all great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine implements DistanceMetric as great-circle distance on a sphere.
//
// Inputs are degrees and are not validated: out-of-range coordinates yield a
// finite but geographically meaningless result. Validation belongs to the
// request boundary.
type Haversine struct{}

func (Haversine) Distance(from, to domain.Coordinates) float64 {
	return HaversineKm(from, to)
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b domain.Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLon*sinLon
	// Rounding and out-of-range latitudes can push h outside [0, 1].
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
