package ports

import (
	"context"
	"errors"
	"route-solver-service/internal/domain"
)

var ErrDepotNotFound = errors.New("depot not found")

// Port: a boundary for retrieving configured depots.
type DepotRepository interface {
	// Retrieve all depots ordered by id.
	ListDepots(ctx context.Context) ([]domain.Depot, error)
	// Retrieve a single depot. Returns ErrDepotNotFound for unknown ids.
	GetDepot(ctx context.Context, id string) (domain.Depot, error)
}
