package domain

const DefaultDepotID = "default"

// Starting location for route construction.
type Depot struct {
	ID       string
	Name     string
	Location Coordinates
}

// DefaultDepot returns the built-in New York depot.
func DefaultDepot() Depot {
	return Depot{
		ID:       DefaultDepotID,
		Name:     "New York",
		Location: Coordinates{Lat: 40.7128, Lon: -74.0060},
	}
}
