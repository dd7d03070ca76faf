package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates in degrees (latitude, longitude).
// Used both for order locations and for the moving route position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as an orb.Point ([lon, lat] ordering).
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// Report whether the coordinates fall inside the valid WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
