package handlers

import (
	"route-solver-service/internal/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidateStruct(t *testing.T) {
	valid := dto.SolveRequest{
		Orders: []dto.OrderRequest{
			{ID: "a", Latitude: ptr(40.7), Longitude: ptr(-74.0), WeightKg: ptr(0)},
		},
		Vehicles: []dto.VehicleRequest{{ID: "v1", CapacityKg: ptr(100)}},
	}

	details, err := validateStruct(valid)
	require.NoError(t, err)
	assert.Empty(t, details)

	invalid := dto.SolveRequest{
		Orders: []dto.OrderRequest{
			{ID: "", Latitude: ptr(40.7), Longitude: ptr(-181.0), WeightKg: ptr(1)},
		},
		Vehicles: []dto.VehicleRequest{},
	}

	details, err = validateStruct(invalid)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"orders[0].id is required",
		"orders[0].longitude must be >= -180",
	}, details)
}

func TestToSolveRequest(t *testing.T) {
	req := dto.SolveRequest{
		DepotID: "la",
		Orders: []dto.OrderRequest{
			{ID: "a", Latitude: ptr(1.5), Longitude: ptr(2.5), WeightKg: ptr(7)},
		},
		Vehicles: []dto.VehicleRequest{{ID: "v1", CapacityKg: ptr(100)}},
	}

	got := toSolveRequest(req)
	assert.Equal(t, "la", got.DepotID)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "a", got.Orders[0].ID)
	assert.Equal(t, 1.5, got.Orders[0].Latitude)
	assert.Equal(t, 2.5, got.Orders[0].Longitude)
	assert.Equal(t, 7, got.Orders[0].WeightKg)
	require.Len(t, got.Vehicles, 1)
	assert.Equal(t, 100, got.Vehicles[0].CapacityKg)
}
