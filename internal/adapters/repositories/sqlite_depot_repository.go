package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/platform/obs"
	"route-solver-service/internal/ports"
)

// SQLite-backed implementation of the DepotRepository port.
type SqliteDepotRepository struct{ DB *sql.DB }

func NewSqliteDepotRepository(db *sql.DB) *SqliteDepotRepository {
	return &SqliteDepotRepository{DB: db}
}

// Return all depots stored in the database.
func (s *SqliteDepotRepository) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite depot repository: DB is nil")
	}

	query := `
	SELECT
		depot_id,
		name,
		lat,
		lon
	FROM depots
	ORDER BY depot_id;
	`
	return listDepots(ctx, s.DB, query)
}

func (s *SqliteDepotRepository) GetDepot(ctx context.Context, id string) (_ domain.Depot, err error) {
	defer obs.Time(ctx, "depots.sqlite.GetDepot")(&err)

	if s.DB == nil {
		return domain.Depot{}, errors.New("sqlite depot repository: DB is nil")
	}

	query := `
	SELECT
		depot_id,
		name,
		lat,
		lon
	FROM depots
	WHERE depot_id = ?;
	`
	return getDepot(ctx, s.DB, query, id)
}

func listDepots(ctx context.Context, db *sql.DB, query string) ([]domain.Depot, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list depots: query depots table: %w", err)
	}
	defer rows.Close()

	depots := make([]domain.Depot, 0, 8)
	for rows.Next() {
		var d domain.Depot
		if err := rows.Scan(&d.ID, &d.Name, &d.Location.Lat, &d.Location.Lon); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}

func getDepot(ctx context.Context, db *sql.DB, query string, id string) (domain.Depot, error) {
	var d domain.Depot
	err := db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Location.Lat, &d.Location.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Depot{}, fmt.Errorf("get depot %q: %w", id, ports.ErrDepotNotFound)
	}
	if err != nil {
		return domain.Depot{}, fmt.Errorf("get depot %q: query depots table: %w", id, err)
	}

	return d, nil
}
