package repositories

import (
	"context"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDepotRepository(t *testing.T) {
	la := domain.Depot{ID: "la", Name: "Los Angeles", Location: domain.Coordinates{Lat: 34.0522, Lon: -118.2437}}
	repo := NewStaticDepotRepository(la, domain.DefaultDepot())
	ctx := context.Background()

	depots, err := repo.ListDepots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "la"}, []string{depots[0].ID, depots[1].ID})

	got, err := repo.GetDepot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDepot(), got)

	_, err = repo.GetDepot(ctx, "nowhere")
	assert.ErrorIs(t, err, ports.ErrDepotNotFound)
}
