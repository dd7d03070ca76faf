package domain

// Represents a single delivery order handled by one solve call.
// An Order has an identifier unique within the request, a location,
// and a weight. Orders are never modified during route construction.
type Order struct {
	ID        string
	Latitude  float64
	Longitude float64
	WeightKg  int
}

func (o Order) Location() Coordinates {
	return Coordinates{Lat: o.Latitude, Lon: o.Longitude}
}
