package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-solver-service/internal/domain"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS depots (
		depot_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`)
}

// Initialize the PostgreSQL database schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS depots (
		depot_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`)
}

func initSchema(db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DepotSeed struct {
	DepotID   string  `json:"depot_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Read and validate depot seeds from a JSON file.
func LoadDepotSeeds(jsonPath string) ([]DepotSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed depots: read %q: %w", jsonPath, err)
	}

	var data []DepotSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed depots: parse json: %w", err)
	}

	rows := make([]DepotSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.DepotID)
		if id == "" {
			return nil, fmt.Errorf("seed depots: item at index %d: depot_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed depots: depot_id=%q: name cannot be empty", id)
		}

		loc := domain.Coordinates{Lat: item.Latitude, Lon: item.Longitude}
		if !loc.Valid() {
			return nil, fmt.Errorf("seed depots: depot_id=%q: coordinates out of range (%v, %v)", id, loc.Lat, loc.Lon)
		}

		rows = append(rows, DepotSeed{DepotID: id, Name: name, Latitude: loc.Lat, Longitude: loc.Lon})
	}

	return rows, nil
}

// Populate the SQLite database with depot data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	return seed(db, jsonPath, `
	INSERT OR REPLACE INTO depots (
		depot_id,
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`)
}

// Populate the PostgreSQL database with depot data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	return seed(db, jsonPath, `
	INSERT INTO depots (depot_id, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (depot_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
}

func seed(db *sql.DB, jsonPath string, query string) error {
	if db == nil {
		return errors.New("seed depots: DB is nil")
	}

	rows, err := LoadDepotSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed depots: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed depots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range rows {
		if _, err := stmt.Exec(d.DepotID, d.Name, d.Latitude, d.Longitude); err != nil {
			return fmt.Errorf("seed depots: insert depot_id=%q: %w", d.DepotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed depots: commit tx: %w", err)
	}

	return nil
}
