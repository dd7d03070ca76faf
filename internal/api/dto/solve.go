package dto

// Pointer fields distinguish a missing value from a zero value during validation.
type OrderRequest struct {
	ID        string   `json:"id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	WeightKg  *int     `json:"weightKg" validate:"required,gte=0"`
}

type VehicleRequest struct {
	ID         string `json:"id" validate:"required"`
	CapacityKg *int   `json:"capacityKg" validate:"required,gte=0"`
}

type SolveRequest struct {
	DepotID  string           `json:"depotId,omitempty"`
	Orders   []OrderRequest   `json:"orders" validate:"required,unique=ID,dive"`
	Vehicles []VehicleRequest `json:"vehicles" validate:"required,dive"`
}

type OrderResponse struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	WeightKg  int     `json:"weightKg"`
}

type SolveResponse struct {
	Route []OrderResponse `json:"route"`
}
