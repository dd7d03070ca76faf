package config

import (
	"fmt"
	"log"
	"os"
	"route-solver-service/internal/domain"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration assembled from environment variables.
type Config struct {
	Port        string
	ServiceName string

	// DatabaseURL selects PostgreSQL; DBPath selects SQLite. With neither set
	// the service runs on the static depot list.
	DatabaseURL string
	DBPath      string
	SeedPath    string

	DefaultDepotID string
	DefaultDepot   domain.Depot

	MaxOrders      int
	MaxBodyBytes   int64
	SolveRateLimit float64
	SolveRateBurst int

	RedisURL     string
	RedisChannel string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	depot := domain.DefaultDepot()
	lat, err := GetFloat("DEPOT_LAT", depot.Location.Lat)
	if err != nil {
		return Config{}, err
	}
	lon, err := GetFloat("DEPOT_LON", depot.Location.Lon)
	if err != nil {
		return Config{}, err
	}
	depot.ID = Get("DEFAULT_DEPOT_ID", domain.DefaultDepotID)
	depot.Name = Get("DEPOT_NAME", depot.Name)
	depot.Location = domain.Coordinates{Lat: lat, Lon: lon}
	if !depot.Location.Valid() {
		return Config{}, fmt.Errorf("config: depot coordinates out of range (%v, %v)", lat, lon)
	}

	maxOrders, err := GetInt("MAX_ORDERS", 5000)
	if err != nil {
		return Config{}, err
	}
	maxBody, err := GetInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	rateLimit, err := GetFloat("SOLVE_RATE_LIMIT", 50)
	if err != nil {
		return Config{}, err
	}
	rateBurst, err := GetInt("SOLVE_RATE_BURST", 100)
	if err != nil {
		return Config{}, err
	}

	if maxOrders < 0 || maxBody <= 0 || rateLimit < 0 || rateBurst < 0 {
		return Config{}, fmt.Errorf(
			"config: limits must be non-negative (MAX_ORDERS=%d MAX_BODY_BYTES=%d SOLVE_RATE_LIMIT=%v SOLVE_RATE_BURST=%d)",
			maxOrders, maxBody, rateLimit, rateBurst,
		)
	}

	return Config{
		Port:           Get("PORT", "8080"),
		ServiceName:    Get("SERVICE_NAME", "GreenLink Optimization Engine"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:         strings.TrimSpace(os.Getenv("DB_PATH")),
		SeedPath:       Get("SEED_PATH", "data/seeds/depots.json"),
		DefaultDepotID: depot.ID,
		DefaultDepot:   depot,
		MaxOrders:      maxOrders,
		MaxBodyBytes:   int64(maxBody),
		SolveRateLimit: rateLimit,
		SolveRateBurst: rateBurst,
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		RedisChannel:   Get("REDIS_CHANNEL", "routes.solved"),
	}, nil
}

// Get returns the value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, v)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a number, got %q", key, v)
	}
	return f, nil
}
