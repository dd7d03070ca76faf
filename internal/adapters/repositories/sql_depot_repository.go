package repositories

import (
	"context"
	"database/sql"
	"errors"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/platform/obs"
)

// SQLDepotRepository is a PostgreSQL-backed DepotRepository (pgx stdlib driver).
type SQLDepotRepository struct {
	DB *sql.DB
}

func NewSQLDepotRepository(db *sql.DB) *SQLDepotRepository {
	return &SQLDepotRepository{DB: db}
}

func (s *SQLDepotRepository) ListDepots(ctx context.Context) (_ []domain.Depot, err error) {
	defer obs.Time(ctx, "depots.sql.ListDepots")(&err)

	if s.DB == nil {
		return nil, errors.New("sql depot repository: DB is nil")
	}

	q := `
	SELECT depot_id, name, lat, lon
    FROM depots
    ORDER BY depot_id;
	`
	return listDepots(ctx, s.DB, q)
}

func (s *SQLDepotRepository) GetDepot(ctx context.Context, id string) (_ domain.Depot, err error) {
	defer obs.Time(ctx, "depots.sql.GetDepot")(&err)

	if s.DB == nil {
		return domain.Depot{}, errors.New("sql depot repository: DB is nil")
	}

	q := `
	SELECT depot_id, name, lat, lon
    FROM depots
    WHERE depot_id = $1;
	`
	return getDepot(ctx, s.DB, q, id)
}
