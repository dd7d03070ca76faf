package repositories

import (
	"context"
	"fmt"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/ports"
	"slices"
	"strings"
)

// In-process DepotRepository used when no database is configured.
type StaticDepotRepository struct {
	depots []domain.Depot
}

// NewStaticDepotRepository copies depots and sorts them by id.
func NewStaticDepotRepository(depots ...domain.Depot) *StaticDepotRepository {
	out := slices.Clone(depots)
	slices.SortFunc(out, func(a, b domain.Depot) int { return strings.Compare(a.ID, b.ID) })
	return &StaticDepotRepository{depots: out}
}

func (s *StaticDepotRepository) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	return slices.Clone(s.depots), nil
}

func (s *StaticDepotRepository) GetDepot(ctx context.Context, id string) (domain.Depot, error) {
	for _, d := range s.depots {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Depot{}, fmt.Errorf("get depot %q: %w", id, ports.ErrDepotNotFound)
}
